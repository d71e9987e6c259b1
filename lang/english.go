package lang

import (
	"fmt"

	"shorts-factory/types"
)

func newEnglish() Provider {
	return &catalogue{
		code:   types.LangEnglish,
		name:   "English",
		voices: []string{"en-US-JennyNeural", "en-US-GuyNeural"},
		ctrPhrases: []string{
			"Game changer", "In just one minute", "Don't miss this",
		},
		keywords: map[types.KeywordCategory][]string{
			types.KeywordPurchase:   {"best price", "coupon code", "discount"},
			types.KeywordComparison: {"comparison", "review", "honest opinion"},
			types.KeywordUrgent:     {"selling out", "today only"},
		},
		expr: Expressions{
			Intro:      []string{"Hey everyone", "You need to see this"},
			Transition: []string{"Next up", "And then"},
			Emphasis:   []string{"seriously", "absolutely"},
			Conclusion: []string{"Like and subscribe for more", "Tell me in the comments"},
		},
		placeholder: "the essentials",
		promptNote:  "Write every text field in natural, native-level English.",
		script:      englishScript,
	}
}

func englishScript(styleID, toneID, topic string, kw [3]string, ex exprSet) string {
	switch styleID {
	case StyleShort:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! %s is %s crucial. %s!", ex.Intro, kw[0], ex.Emphasis, ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s! Let's check out %s. %s!", ex.Intro, kw[0], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. Here's %s. %s.", ex.Intro, kw[0], ex.Conclusion)
		}
	case StyleStandard:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! Important info about %s. %s, %s is essential. %s, %s matters too. %s!",
				ex.Intro, topic, ex.Emphasis, kw[0], ex.Transition, kw[1], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s! Today we're talking about %s. Curious about %s? %s, let's look at %s too. %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. Let's explore %s. %s is the %s key point. %s, check out %s as well. %s.",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		}
	default: // detailed
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s! Critical info on %s. First, %s verify %s. %s, don't miss %s. Check everything including %s. %s!",
				ex.Intro, topic, ex.Emphasis, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s! Today's topic is %s. Let's dive into %s. %s, %s is interesting too. Can't skip %s. %s!",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		default:
			return fmt.Sprintf("%s. Today we'll cover %s in detail. %s is the most important point. %s, we'll also look at %s. %s, you can get more through %s. %s.",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Emphasis, kw[2], ex.Conclusion)
		}
	}
}
