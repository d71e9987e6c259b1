package lang

import (
	"fmt"

	"shorts-factory/types"
)

func newJapanese() Provider {
	return &catalogue{
		code:   types.LangJapanese,
		name:   "日本語",
		voices: []string{"ja-JP-NanamiNeural", "ja-JP-KeitaNeural"},
		ctrPhrases: []string{
			"神ワザ", "1分でわかる", "お得すぎ",
		},
		keywords: map[types.KeywordCategory][]string{
			types.KeywordPurchase:   {"最安値", "クーポン", "割引"},
			types.KeywordComparison: {"比較", "レビュー", "正直な感想"},
			types.KeywordUrgent:     {"売り切れ間近", "本日限定"},
		},
		expr: Expressions{
			Intro:      []string{"皆さんこんにちは", "これ知らないと損ですよ"},
			Transition: []string{"次に", "そして"},
			Emphasis:   []string{"本当に", "とても"},
			Conclusion: []string{"チャンネル登録お願いします", "コメントで教えてください"},
		},
		placeholder: "大事なポイント",
		promptNote:  "すべてのテキストを、原語民が聞いても自然な日本語で書いてください。",
		script:      japaneseScript,
	}
}

func japaneseScript(styleID, toneID, topic string, kw [3]string, ex exprSet) string {
	switch styleID {
	case StyleShort:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！%sは%s重要です。%s！", ex.Intro, kw[0], ex.Emphasis, ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～%sについて見てみましょう。%s！", ex.Intro, kw[0], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。%sをご紹介します。%s。", ex.Intro, kw[0], ex.Conclusion)
		}
	case StyleStandard:
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！%sについての重要な情報です。%s%sは必須です。%s%sも大切ですね。%s！",
				ex.Intro, topic, ex.Emphasis, kw[0], ex.Transition, kw[1], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～今日は%sのお話です。%s気になりますよね？%s%sも一緒に見ていきましょう。%s！",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。%sについて見ていきます。%sが%sポイントです。%s%sも確認してください。%s。",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], ex.Conclusion)
		}
	default: // detailed
		switch toneID {
		case ToneUrgent:
			return fmt.Sprintf("%s！%sについての大事な情報です。まず%sを%s確認してください。%s%sは見逃せません。%sまで全部チェックが必要です。%s！",
				ex.Intro, topic, kw[0], ex.Emphasis, ex.Transition, kw[1], kw[2], ex.Conclusion)
		case ToneCasual:
			return fmt.Sprintf("%s～今日のテーマは%sです。%sについて詳しく見ていきますね。%s%sも面白いポイントです。%sも外せません。%s！",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], kw[2], ex.Conclusion)
		default:
			return fmt.Sprintf("%s。今日は%sについて詳しく見ていきましょう。%sが最も重要なポイントです。%s%sについても見ていきます。%s%sを通じてより多くの情報が得られます。%s。",
				ex.Intro, topic, kw[0], ex.Transition, kw[1], ex.Emphasis, kw[2], ex.Conclusion)
		}
	}
}
