package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"shorts-factory/ai"
	"shorts-factory/lang"
	"shorts-factory/types"
)

// ErrUnsupportedLanguage mirrors lang.ErrUnsupported at the analyzer
// boundary; callers decide whether to retry with a base language.
var ErrUnsupportedLanguage = lang.ErrUnsupported

// ErrEmptyTopic is returned for blank topics
var ErrEmptyTopic = errors.New("topic must not be empty")

const analysisPrompt = `You are a short-form shopping channel consultant earning $20K+/month from keyword optimization.

Topic/Product: %s

Identify what buyers search for right before purchase (price, discounts, reviews, comparisons, urgency) and expand into high-revenue keywords.

Respond with ONLY a JSON object in exactly this shape:
{
  "main_keyword": "main product or keyword",
  "keywords": [
    {"text": "keyword", "category": "purchase-inducing", "score_hint": 90},
    {"text": "keyword", "category": "comparison", "score_hint": 80},
    {"text": "keyword", "category": "urgent", "score_hint": 85}
  ],
  "titles": [
    {"text": "title", "hook": "hook element", "ctr_score": 90},
    {"text": "title", "hook": "hook element", "ctr_score": 88},
    {"text": "title", "hook": "hook element", "ctr_score": 85}
  ],
  "content_strategy": {"intro": "...", "body": "...", "conclusion": "..."}
}

Provide 8 keywords and 3 titles. Valid categories: purchase-inducing, comparison, urgent, other. ctr_score and score_hint are 0-100.
%s`

const subjectPrompt = `Analyze this image for a short-form shopping channel and respond with ONLY a JSON object:
{"detected_subject": "product or subject name", "is_product": true, "description": "short description", "suggested_category": "category"}
%s`

// Analyzer turns a topic (or image-derived subject) into a
// KeywordAnalysis. AI capability failures never surface: the analyzer
// degrades to the deterministic catalogue generator, which keeps the
// pipeline total without external dependencies.
type Analyzer struct {
	capability ai.Capability
	vision     ai.Vision
	langs      *lang.Registry
}

// New creates an Analyzer. A nil capability is allowed and means every
// analysis uses the deterministic fallback.
func New(capability ai.Capability, langs *lang.Registry) *Analyzer {
	a := &Analyzer{capability: capability, langs: langs}
	if v, ok := capability.(ai.Vision); ok {
		a.vision = v
	}
	return a
}

// Analyze produces a schema-valid, non-empty KeywordAnalysis for the
// topic. Only bad input (blank topic, unknown language) is an error.
func (a *Analyzer) Analyze(ctx context.Context, topic string, code types.LanguageCode) (*types.KeywordAnalysis, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	provider, ok := a.langs.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	if a.capability == nil {
		log.Printf("[analyzer] no AI provider configured — using %s catalogue keywords", provider.Name())
		return Fallback(topic, provider), nil
	}

	raw, err := a.capability.Generate(ctx, fmt.Sprintf(analysisPrompt, topic, provider.PromptNote()))
	if err != nil {
		log.Printf("[analyzer] AI analysis failed: %v — falling back to catalogue", err)
		return Fallback(topic, provider), nil
	}

	analysis, err := parseAnalysis(raw, topic)
	if err != nil {
		log.Printf("[analyzer] AI response unusable: %v — falling back to catalogue", err)
		return Fallback(topic, provider), nil
	}
	return analysis, nil
}

// DetectSubject extracts a subject name from image bytes via the vision
// capability. ai.ErrUnavailable is a normal condition, not a failure.
func (a *Analyzer) DetectSubject(ctx context.Context, image []byte, code types.LanguageCode) (string, error) {
	if a.vision == nil {
		return "", ai.ErrUnavailable
	}
	note := ""
	if provider, ok := a.langs.Lookup(code); ok {
		note = provider.PromptNote()
	}
	raw, err := a.vision.AnalyzeImage(ctx, image, fmt.Sprintf(subjectPrompt, note))
	if err != nil {
		return "", err
	}
	extracted, err := ai.ExtractJSON(raw)
	if err != nil {
		return "", err
	}
	var result struct {
		DetectedSubject string `json:"detected_subject"`
	}
	if err := json.Unmarshal([]byte(extracted), &result); err != nil {
		return "", fmt.Errorf("parse vision response: %w", err)
	}
	if strings.TrimSpace(result.DetectedSubject) == "" {
		return "", ai.ErrInvalidResponse
	}
	return result.DetectedSubject, nil
}

func parseAnalysis(raw, topic string) (*types.KeywordAnalysis, error) {
	extracted, err := ai.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var analysis types.KeywordAnalysis
	if err := json.Unmarshal([]byte(extracted), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis JSON: %w", err)
	}
	if len(analysis.Keywords) == 0 || len(analysis.Titles) == 0 {
		return nil, ai.ErrInvalidResponse
	}
	if analysis.MainKeyword == "" {
		analysis.MainKeyword = topic
	}
	for i := range analysis.Keywords {
		analysis.Keywords[i].Category = normalizeCategory(analysis.Keywords[i].Category)
	}
	return &analysis, nil
}

func normalizeCategory(cat types.KeywordCategory) types.KeywordCategory {
	switch cat {
	case types.KeywordPurchase, types.KeywordComparison, types.KeywordUrgent:
		return cat
	}
	return types.KeywordOther
}

// Fallback synthesizes a KeywordAnalysis from the language catalogue.
// The result always has non-empty keywords and titles, so the pipeline
// stays total when the AI capability is missing or misbehaving.
func Fallback(topic string, provider lang.Provider) *types.KeywordAnalysis {
	analysis := &types.KeywordAnalysis{
		MainKeyword: topic,
		Strategy: types.ContentStrategy{
			Intro:      "Attention hook",
			Body:       "Core information",
			Conclusion: "Call to action",
		},
	}

	scores := map[types.KeywordCategory]int{
		types.KeywordPurchase:   90,
		types.KeywordUrgent:     85,
		types.KeywordComparison: 80,
	}
	for _, cat := range []types.KeywordCategory{
		types.KeywordPurchase,
		types.KeywordComparison,
		types.KeywordUrgent,
	} {
		for _, phrase := range provider.KeywordPhrases(cat) {
			analysis.Keywords = append(analysis.Keywords, types.KeywordCandidate{
				Text:      topic + " " + phrase,
				Category:  cat,
				ScoreHint: scores[cat],
			})
		}
	}

	ctr := provider.CTRPhrases()
	purchase := provider.KeywordPhrases(types.KeywordPurchase)
	comparison := provider.KeywordPhrases(types.KeywordComparison)
	analysis.Titles = []types.TitleCandidate{
		{Text: fmt.Sprintf("%s! %s %s", pick(ctr, 0), topic, pick(purchase, 0)), Hook: pick(ctr, 0), CTRScore: 90},
		{Text: fmt.Sprintf("%s %s %s", pick(ctr, 1), topic, pick(comparison, 0)), Hook: pick(ctr, 1), CTRScore: 88},
		{Text: fmt.Sprintf("%s %s", pick(ctr, 2), topic), Hook: pick(ctr, 2), CTRScore: 85},
	}
	return analysis
}

func pick(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
