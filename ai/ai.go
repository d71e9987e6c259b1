package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnavailable means no credential is configured for the capability.
// This is a normal, expected condition: callers degrade to their
// deterministic fallback instead of failing.
var ErrUnavailable = errors.New("ai capability unavailable")

// ErrInvalidResponse means the capability answered but its output
// contains no usable JSON
var ErrInvalidResponse = errors.New("ai response contains no valid JSON")

// Capability is the opaque text-generation boundary consumed by the
// pipeline. Responses are free text that may or may not wrap JSON in a
// markdown fence; use ExtractJSON before parsing.
type Capability interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Vision is the optional image-analysis boundary. Providers that cannot
// analyze images simply do not implement it.
type Vision interface {
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
}

// ExtractJSON pulls the first top-level JSON object out of a model
// response. It prefers a ```json fenced block, then falls back to
// scanning for the first balanced object. Absence of valid JSON is a
// capability failure (ErrInvalidResponse).
func ExtractJSON(text string) (string, error) {
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			candidate := strings.TrimSpace(rest[:j])
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}
	}

	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if candidate, ok := balancedObject(text[start:]); ok {
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return "", ErrInvalidResponse
}

// balancedObject returns the prefix of s that forms a brace-balanced
// object, ignoring braces inside string literals
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
