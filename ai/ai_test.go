package ai

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced json block",
			input: "Here you go:\n```json\n{\"a\": 1}\n```\nHope that helps!",
			want:  `{"a": 1}`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "object embedded in prose",
			input: `Sure! The analysis is {"a": {"b": 2}} as requested.`,
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "use {curly} braces"}`,
			want:  `{"text": "use {curly} braces"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if err != nil {
				t.Fatalf("ExtractJSON() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"no json here at all",
		`{"unclosed": `,
		"```json\nnot json\n```",
	} {
		if _, err := ExtractJSON(input); !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("ExtractJSON(%q) error = %v, want ErrInvalidResponse", input, err)
		}
	}
}
