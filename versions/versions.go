package versions

import (
	"fmt"
	"time"

	"shorts-factory/lang"
	"shorts-factory/types"
)

// StyleVariant is one narration length/density tier. KeywordCount is how
// many selected keywords the tier's templates consume.
type StyleVariant struct {
	ID           string
	Name         string
	DurationMin  int
	DurationMax  int
	KeywordCount int
}

// ToneVariant is a narration register applied to a style's template
type ToneVariant struct {
	ID   string
	Name string
}

// Styles is the static style catalogue, iterated in declaration order
var Styles = []StyleVariant{
	{ID: lang.StyleShort, Name: "Short", DurationMin: 15, DurationMax: 30, KeywordCount: 1},
	{ID: lang.StyleStandard, Name: "Standard", DurationMin: 30, DurationMax: 45, KeywordCount: 2},
	{ID: lang.StyleDetailed, Name: "Detailed", DurationMin: 45, DurationMax: 60, KeywordCount: 3},
}

// Tones is the static tone catalogue. The default matrix pairs every
// style with the first tone only, keeping output count bounded.
var Tones = []ToneVariant{
	{ID: lang.ToneUrgent, Name: "Urgent"},
	{ID: lang.ToneCasual, Name: "Casual"},
	{ID: lang.ToneNeutral, Name: "Neutral"},
}

// Generator expands a selection into script versions across the
// style×tone×language matrix
type Generator struct {
	langs *lang.Registry
	now   func() time.Time
}

// New creates a Generator
func New(langs *lang.Registry) *Generator {
	return &Generator{langs: langs, now: time.Now}
}

// Generate produces min(numVersions, len(Styles)) script versions for
// the topic and selection. Output is deterministic for identical inputs
// except for CreatedAt. Selections shorter than a style tier's keyword
// count get the language's neutral placeholder in the empty slots.
func (g *Generator) Generate(topic string, sel types.Selection, code types.LanguageCode, numVersions int) ([]types.ScriptVersion, error) {
	provider, ok := g.langs.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", lang.ErrUnsupported, code)
	}
	if numVersions <= 0 {
		return nil, nil
	}

	count := numVersions
	if count > len(Styles) {
		count = len(Styles)
	}

	keywords := padKeywords(sel.Keywords, provider.Placeholder())
	createdAt := g.now().UTC()

	out := make([]types.ScriptVersion, 0, count)
	for i, style := range Styles[:count] {
		tone := Tones[0]
		out = append(out, types.ScriptVersion{
			VersionID:       fmt.Sprintf("v%d", i+1),
			Language:        string(code),
			Style:           style.Name,
			Tone:            tone.Name,
			Title:           fmt.Sprintf("%s [%s]", sel.Title, style.Name),
			ScriptText:      provider.Script(style.ID, tone.ID, topic, keywords),
			DurationSeconds: style.DurationMax,
			VoiceID:         provider.Voices()[0],
			CreatedAt:       createdAt,
		})
	}
	return out, nil
}

// padKeywords fills missing keyword slots with the placeholder instead
// of indexing past the end of a short selection
func padKeywords(selected []string, placeholder string) [3]string {
	var kw [3]string
	for i := range kw {
		if i < len(selected) && selected[i] != "" {
			kw[i] = selected[i]
		} else {
			kw[i] = placeholder
		}
	}
	return kw
}
