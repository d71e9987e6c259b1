package lang

import (
	"fmt"

	"shorts-factory/types"
)

func newThai() Provider {
	return &catalogue{
		code:   types.LangThai,
		name:   "ภาษาไทย",
		voices: []string{"th-TH-PremwadeeNeural", "th-TH-NiwatNeural"},
		ctrPhrases: []string{
			"เคล็ดลับเด็ด", "ดูจบในหนึ่งนาที", "คุ้มมาก",
		},
		keywords: map[types.KeywordCategory][]string{
			types.KeywordPurchase:   {"ราคาถูกที่สุด", "คูปอง", "ส่วนลด"},
			types.KeywordComparison: {"เปรียบเทียบ", "รีวิว", "ความเห็นตรงๆ"},
			types.KeywordUrgent:     {"ใกล้หมด", "วันนี้เท่านั้น"},
		},
		expr: Expressions{
			Intro:      []string{"สวัสดีค่ะทุกคน", "เรื่องนี้ต้องดู"},
			Transition: []string{"ต่อไป", "แล้วก็"},
			Emphasis:   []string{"จริงๆ", "มากๆ"},
			Conclusion: []string{"อย่าลืมกดติดตามนะคะ", "คอมเมนต์บอกกันได้เลย"},
		},
		placeholder: "ข้อมูลสำคัญ",
		promptNote:  "เขียนข้อความทั้งหมดเป็นภาษาไทยที่เป็นธรรมชาติเหมาะกับเจ้าของภาษา",
		script:      thaiScript,
	}
}

func thaiScript(styleID, toneID, topic string, kw [3]string, ex exprSet) string {
	switch styleID {
	case StyleShort:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! %s%sสำคัญมาก %s!", ex.Intro, kw[0], ex.Emphasis, ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ มาดู%sกันนะคะ %s!", ex.Intro, kw[0], ex.Conclusion)
		default:
			return fmt.Sprintf("%s วันนี้มาดู%s %s", ex.Intro, kw[0], ex.Conclusion)
		}
	case StyleStandard:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! ข้อมูลสำคัญเกี่ยวกับ%s %s%sจำเป็นมาก %s%sก็สำคัญเช่นกัน %s!",
				ex.Intro, topic, ex.Emphasis, kw[0], ex.Transition, kw[1], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ วันนี้เรื่อง%s อยากรู้เรื่อง%sไหม? %sมาดู%sด้วยกัน %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Conclusion)
		default:
			return fmt.Sprintf("%s เรามาดู%sกัน %sเป็น%sประเด็นหลัก %sตรวจสอบ%sด้วย %s",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		}
	default: // detailed
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! ข้อมูลสำคัญเกี่ยวกับ%s อันดับแรก%s%sต้องตรวจสอบ %s%sพลาดไม่ได้ ต้องเช็ค%sทั้งหมด %s!",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], kw[2], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ วันนี้หัวข้อเรื่อง%s เรามาดู%sกันอย่างละเอียด %s%sก็น่าสนใจนะ ไม่พลาด%s %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		default:
			return fmt.Sprintf("%s วันนี้เรามาดู%sอย่างละเอียด %sเป็นประเด็นที่สำคัญที่สุด %sดู%sด้วย %sผ่าน%sจะได้ข้อมูลเพิ่มเติม %s",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Emphasis, kw[2], ex.Conclusion)
		}
	}
}
