package lang

import (
	"fmt"

	"shorts-factory/types"
)

func newChinese() Provider {
	return &catalogue{
		code:   types.LangChinese,
		name:   "中文",
		voices: []string{"zh-CN-XiaoxiaoNeural", "zh-CN-YunxiNeural"},
		ctrPhrases: []string{
			"干货", "一分钟看懂", "太划算了",
		},
		keywords: map[types.KeywordCategory][]string{
			types.KeywordPurchase:   {"最低价", "优惠券", "折扣"},
			types.KeywordComparison: {"对比", "测评", "真实评价"},
			types.KeywordUrgent:     {"即将售罄", "仅限今天"},
		},
		expr: Expressions{
			Intro:      []string{"大家好", "今天这个你一定要看"},
			Transition: []string{"接下来", "然后"},
			Emphasis:   []string{"真的", "非常"},
			Conclusion: []string{"记得点赞关注", "评论区告诉我"},
		},
		placeholder: "重点信息",
		promptNote:  "请用母语者听起来自然的中文撰写所有文本。",
		script:      chineseScript,
	}
}

func chineseScript(styleID, toneID, topic string, kw [3]string, ex exprSet) string {
	switch styleID {
	case StyleShort:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！%s%s很重要。%s！", ex.Intro, kw[0], ex.Emphasis, ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～我们来了解%s吧。%s！", ex.Intro, kw[0], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。今天介绍%s。%s。", ex.Intro, kw[0], ex.Conclusion)
		}
	case StyleStandard:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！关于%s的重要信息。%s%s是必须的。%s%s也很重要。%s！",
				ex.Intro, topic, ex.Emphasis, kw[0], ex.Transition, kw[1], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～今天说说%s。%s大家关心吗？%s%s也一起看看。%s！",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。我们了解一下%s。%s是%s核心。%s%s也请确认。%s。",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		}
	default: // detailed
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！关于%s的重要消息。首先%s%s必须确认。%s%s千万不要错过。%s也要全部检查。%s！",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], kw[2], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～今天的话题是%s。详细了解%s。%s%s也很有趣。%s也不能错过。%s！",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。今天详细介绍%s。%s是最重要的要点。%s也看看%s。%s通过%s可以获得更多信息。%s。",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Emphasis, kw[2], ex.Conclusion)
		}
	}
}
