package versions

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"shorts-factory/lang"
	"shorts-factory/types"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func testGenerator() *Generator {
	g := New(lang.NewRegistry())
	g.now = fixedClock
	return g
}

func TestGenerateMatrix(t *testing.T) {
	sel := types.Selection{
		Keywords: []string{"kw one", "kw two", "kw three"},
		Title:    "Big Title",
	}
	got, err := testGenerator().Generate("wireless earbuds", sel, types.LangEnglish, 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Generate() = %d versions, want 3", len(got))
	}

	for i, v := range got {
		style := Styles[i]
		if want := "v" + string(rune('1'+i)); v.VersionID != want {
			t.Errorf("version %d: id = %q, want %q", i, v.VersionID, want)
		}
		if v.Style != style.Name {
			t.Errorf("version %d: style = %q, want %q", i, v.Style, style.Name)
		}
		if v.Tone != Tones[0].Name {
			t.Errorf("version %d: tone = %q, want %q", i, v.Tone, Tones[0].Name)
		}
		if want := "Big Title [" + style.Name + "]"; v.Title != want {
			t.Errorf("version %d: title = %q, want %q", i, v.Title, want)
		}
		if v.DurationSeconds != style.DurationMax {
			t.Errorf("version %d: duration = %d, want style upper bound %d", i, v.DurationSeconds, style.DurationMax)
		}
		if v.VoiceID != "en-US-JennyNeural" {
			t.Errorf("version %d: voice = %q", i, v.VoiceID)
		}
		if v.ScriptText == "" {
			t.Errorf("version %d: empty script", i)
		}
		if !v.CreatedAt.Equal(fixedClock()) {
			t.Errorf("version %d: created at %v", i, v.CreatedAt)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	sel := types.Selection{Keywords: []string{"a", "b", "c"}, Title: "T"}
	g := testGenerator()

	first, err := g.Generate("topic", sel, types.LangKorean, 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := g.Generate("topic", sel, types.LangKorean, 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different versions")
	}
}

func TestGenerateCountCapped(t *testing.T) {
	sel := types.Selection{Keywords: []string{"a"}, Title: "T"}
	g := testGenerator()

	got, err := g.Generate("topic", sel, types.LangEnglish, 10)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(got) != len(Styles) {
		t.Errorf("Generate(10) = %d versions, want %d", len(got), len(Styles))
	}

	got, err = g.Generate("topic", sel, types.LangEnglish, 1)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Generate(1) = %d versions, want 1", len(got))
	}

	got, err = g.Generate("topic", sel, types.LangEnglish, 0)
	if err != nil || got != nil {
		t.Errorf("Generate(0) = %v, %v, want nil, nil", got, err)
	}
}

func TestGeneratePadsShortSelection(t *testing.T) {
	sel := types.Selection{Keywords: []string{"solo"}, Title: "T"}
	got, err := testGenerator().Generate("topic", sel, types.LangEnglish, 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	detailed := got[2].ScriptText
	if !strings.Contains(detailed, "solo") {
		t.Errorf("detailed script missing selected keyword: %q", detailed)
	}
	if !strings.Contains(detailed, "the essentials") {
		t.Errorf("detailed script missing placeholder padding: %q", detailed)
	}
}

func TestGenerateUnsupportedLanguage(t *testing.T) {
	_, err := testGenerator().Generate("topic", types.Selection{}, "xx", 3)
	if !errors.Is(err, lang.ErrUnsupported) {
		t.Errorf("error = %v, want lang.ErrUnsupported", err)
	}
}
