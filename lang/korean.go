package lang

import (
	"fmt"

	"shorts-factory/types"
)

func newKorean() Provider {
	return &catalogue{
		code:   types.LangKorean,
		name:   "한국어",
		voices: []string{"ko-KR-SunHiNeural", "ko-KR-InJoonNeural"},
		ctrPhrases: []string{
			"꿀팁", "1분만에", "대박",
		},
		keywords: map[types.KeywordCategory][]string{
			types.KeywordPurchase:   {"최저가", "쿠폰", "할인코드"},
			types.KeywordComparison: {"비교", "리뷰", "솔직후기"},
			types.KeywordUrgent:     {"품절임박", "오늘만"},
		},
		expr: Expressions{
			Intro:      []string{"안녕하세요 여러분", "요즘 이거 모르면 손해예요"},
			Transition: []string{"그리고", "다음으로"},
			Emphasis:   []string{"정말", "진짜"},
			Conclusion: []string{"구독과 좋아요 부탁드려요", "댓글로 알려주세요"},
		},
		placeholder: "꼭 필요한 정보",
		promptNote:  "모든 텍스트를 원어민이 듣기에 자연스러운 한국어로 작성하세요.",
		script:      koreanScript,
	}
}

func koreanScript(styleID, toneID, topic string, kw [3]string, ex exprSet) string {
	switch styleID {
	case StyleShort:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! %s %s 중요합니다. %s!", ex.Intro, kw[0], ex.Emphasis, ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ %s 알아볼까요? %s!", ex.Intro, kw[0], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. %s를 소개합니다. %s.", ex.Intro, kw[0], ex.Conclusion)
		}
	case StyleStandard:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! %s에 대해 알려드립니다. %s은 %s 필수입니다. %s %s도 중요하죠. %s!",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ 오늘은 %s 이야기입니다. %s 궁금하시죠? %s %s도 함께 알아봐요. %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. %s에 대해 알아보겠습니다. %s가 %s 핵심입니다. %s %s도 확인하세요. %s.",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		}
	default: // detailed
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! %s에 대한 중요한 정보입니다. 먼저 %s부터 %s 확인하세요. %s %s는 놓치면 안 됩니다. %s까지 모두 체크하셔야 합니다. %s!",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], kw[2], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s~ 오늘 주제는 %s이에요. %s에 대해 자세히 알아볼게요. %s %s도 재미있는 부분이죠. %s도 빼놓을 수 없어요. %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. 오늘은 %s에 대해 상세히 알아보겠습니다. %s가 가장 중요한 포인트입니다. %s %s에 대해서도 살펴보겠습니다. %s %s를 통해 더 많은 정보를 얻으실 수 있습니다. %s.",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Emphasis, kw[2], ex.Conclusion)
		}
	}
}
