package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// Gemini generates text and analyzes images through the Google
// generative AI API. It implements both Capability and Vision.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini capability. An empty API key means the
// capability is unavailable.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate runs a text prompt and returns the raw response text
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return flattenResponse(resp)
}

// AnalyzeImage runs a prompt against image bytes and returns the raw
// response text
func (g *Gemini) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData("jpeg", image),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision: %w", err)
	}
	return flattenResponse(resp)
}

// Close releases the underlying API client
func (g *Gemini) Close() error {
	return g.client.Close()
}

func flattenResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrInvalidResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrInvalidResponse
	}
	return sb.String(), nil
}
