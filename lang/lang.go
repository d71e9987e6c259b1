package lang

import (
	"errors"

	"shorts-factory/types"
)

// ErrUnsupported is returned for language codes outside the catalogue
var ErrUnsupported = errors.New("unsupported language")

// Style and tone identifiers shared by the sentence templates and the
// version matrix catalogue
const (
	StyleShort    = "short"
	StyleStandard = "standard"
	StyleDetailed = "detailed"

	ToneUrgent  = "urgent"
	ToneCasual  = "casual"
	ToneNeutral = "neutral"
)

// Expressions are the idiom fragments a language contributes to scripts
type Expressions struct {
	Intro      []string
	Transition []string
	Emphasis   []string
	Conclusion []string
}

// Provider supplies one language's fixed catalogue: idiom fragments,
// phrase lists and the per-(style,tone) sentence templates. Pure lookup,
// no I/O.
type Provider interface {
	Code() types.LanguageCode
	Name() string
	Voices() []string
	CTRPhrases() []string
	KeywordPhrases(cat types.KeywordCategory) []string
	Expressions() Expressions
	// Placeholder fills keyword slots a selection could not cover
	Placeholder() string
	// PromptNote is the language instruction appended to AI prompts
	PromptNote() string
	// Script renders narration for one style/tone pairing. The keyword
	// array is already padded to three entries by the caller.
	Script(styleID, toneID, topic string, kw [3]string) string
}

// catalogue is the shared Provider implementation; each language file
// constructs one with its own phrase tables and template function.
type catalogue struct {
	code        types.LanguageCode
	name        string
	voices      []string
	ctrPhrases  []string
	keywords    map[types.KeywordCategory][]string
	expr        Expressions
	placeholder string
	promptNote  string
	script      func(styleID, toneID, topic string, kw [3]string, ex exprSet) string
}

// exprSet is the first fragment of each expression list, the slot the
// sentence templates interpolate
type exprSet struct {
	Intro      string
	Transition string
	Emphasis   string
	Conclusion string
}

func (c *catalogue) Code() types.LanguageCode { return c.code }
func (c *catalogue) Name() string             { return c.name }
func (c *catalogue) Voices() []string         { return c.voices }
func (c *catalogue) CTRPhrases() []string     { return c.ctrPhrases }
func (c *catalogue) Expressions() Expressions { return c.expr }
func (c *catalogue) Placeholder() string      { return c.placeholder }
func (c *catalogue) PromptNote() string       { return c.promptNote }

func (c *catalogue) KeywordPhrases(cat types.KeywordCategory) []string {
	return c.keywords[cat]
}

func (c *catalogue) Script(styleID, toneID, topic string, kw [3]string) string {
	ex := exprSet{
		Intro:      first(c.expr.Intro),
		Transition: first(c.expr.Transition),
		Emphasis:   first(c.expr.Emphasis),
		Conclusion: first(c.expr.Conclusion),
	}
	return c.script(styleID, toneID, topic, kw, ex)
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// Registry holds all built-in language providers
type Registry struct {
	providers map[types.LanguageCode]Provider
}

// NewRegistry builds a registry with every supported language registered
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[types.LanguageCode]Provider)}
	for _, p := range []Provider{
		newKorean(),
		newChinese(),
		newEnglish(),
		newJapanese(),
		newThai(),
	} {
		r.providers[p.Code()] = p
	}
	return r
}

// Lookup returns the provider for a language code
func (r *Registry) Lookup(code types.LanguageCode) (Provider, bool) {
	p, ok := r.providers[code]
	return p, ok
}

// Codes lists the supported language codes
func (r *Registry) Codes() []types.LanguageCode {
	codes := make([]types.LanguageCode, 0, len(r.providers))
	for code := range r.providers {
		codes = append(codes, code)
	}
	return codes
}
