package score

import (
	"strings"
	"testing"

	"argumenta/internal/model"
)

func TestStrength_Formula(t *testing.T) {
	tests := []struct {
		name         string
		premises     int
		conclusions  int
		wordCount    int
		density      float64
		wantScore    int
		wantCategory string
	}{
		{"empty paragraph", 0, 0, 0, 0, 0, model.StrengthWeak},
		{"no components, 60 words", 0, 0, 60, 0, 0, model.StrengthWeak},
		{"no components, short", 0, 0, 40, 0, 0, model.StrengthWeak},
		{"two premises one conclusion dense", 2, 1, 40, 0.2, 80, model.StrengthVeryStrong},
		{"single premise", 1, 0, 20, 0.05, 15, model.StrengthWeak},
		{"single conclusion", 0, 1, 20, 0.05, 20, model.StrengthWeak},
		{"balanced pair", 1, 1, 20, 0.1, 45, model.StrengthModerate},
		{"dense balanced pair", 1, 1, 10, 0.2, 65, model.StrengthStrong},
		{"clamped at 100", 4, 3, 30, 0.25, 100, model.StrengthVeryStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, category := Strength(tt.premises, tt.conclusions, tt.wordCount, tt.density)
			if score != tt.wantScore {
				t.Errorf("Expected score %d, got %d", tt.wantScore, score)
			}
			if category != tt.wantCategory {
				t.Errorf("Expected category %q, got %q", tt.wantCategory, category)
			}
			if score < 0 || score > 100 {
				t.Errorf("Score %d outside [0,100]", score)
			}
		})
	}
}

func TestStrength_CategoryBoundaries(t *testing.T) {
	boundaries := []struct {
		score int
		want  string
	}{
		{70, model.StrengthVeryStrong},
		{69, model.StrengthStrong},
		{50, model.StrengthStrong},
		{49, model.StrengthModerate},
		{30, model.StrengthModerate},
		{29, model.StrengthWeak},
		{0, model.StrengthWeak},
	}

	for _, b := range boundaries {
		got := categorize(b.score)
		if got != b.want {
			t.Errorf("Score %d: expected %q, got %q", b.score, b.want, got)
		}
	}
}

func TestRecommendation_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name        string
		premises    int
		conclusions int
		density     float64
		wordCount   int
		want        string
	}{
		{"no premises", 0, 2, 0.05, 40, recommendAddPremises},
		{"no premises overrides no conclusions", 0, 0, 0.0, 40, recommendAddPremises},
		{"no conclusions", 2, 0, 0.05, 40, recommendAddConclusions},
		{"low density", 1, 1, 0.05, 40, recommendLowDensity},
		{"too long", 2, 1, 0.12, 200, recommendTooLong},
		{"healthy paragraph", 2, 1, 0.2, 40, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommendation(tt.premises, tt.conclusions, tt.density, tt.wordCount)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAnalyze_MidpointAttribution(t *testing.T) {
	first := "Las ciudades crecen porque la gente busca trabajo en los centros urbanos"
	second := "Por lo tanto el transporte público necesita más inversión cada año que pasa"
	text := first + "\n\n" + second

	secondStart := len(first) + 2

	premises := []model.Component{{
		Kind:     model.KindPremise,
		Text:     "la gente busca trabajo",
		StartPos: 28,
		EndPos:   50,
	}}
	conclusions := []model.Component{{
		Kind:     model.KindConclusion,
		Text:     "el transporte público necesita más inversión",
		StartPos: secondStart + 14,
		EndPos:   secondStart + 60,
	}}

	paragraphs := NewScorer().Analyze(text, premises, conclusions)

	if len(paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d", len(paragraphs))
	}

	if paragraphs[0].PremisesCount != 1 || paragraphs[0].ConclusionsCount != 0 {
		t.Errorf("First paragraph: expected 1 premise / 0 conclusions, got %d/%d",
			paragraphs[0].PremisesCount, paragraphs[0].ConclusionsCount)
	}
	if paragraphs[1].PremisesCount != 0 || paragraphs[1].ConclusionsCount != 1 {
		t.Errorf("Second paragraph: expected 0 premises / 1 conclusion, got %d/%d",
			paragraphs[1].PremisesCount, paragraphs[1].ConclusionsCount)
	}
}

func TestAnalyze_SubstringFallbackWithoutOffsets(t *testing.T) {
	text := "Las ciudades crecen porque la gente busca trabajo en los centros urbanos"

	premises := []model.Component{{
		Kind: model.KindPremise,
		Text: "la gente busca trabajo",
		// No usable span: StartPos == EndPos == 0
	}}

	paragraphs := NewScorer().Analyze(text, premises, nil)

	if len(paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].PremisesCount != 1 {
		t.Errorf("Expected substring fallback to count the premise, got %d", paragraphs[0].PremisesCount)
	}
}

func TestAnalyze_DensityInvariant(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "palabra"
	}
	text := strings.Join(words, " ")

	premises := []model.Component{
		{Kind: model.KindPremise, Text: "palabra", StartPos: 0, EndPos: 7},
		{Kind: model.KindPremise, Text: "palabra", StartPos: 8, EndPos: 15},
	}
	conclusions := []model.Component{
		{Kind: model.KindConclusion, Text: "palabra", StartPos: 16, EndPos: 23},
	}

	paragraphs := NewScorer().Analyze(text, premises, conclusions)

	if len(paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(paragraphs))
	}
	p := paragraphs[0]

	want := 3.0 / 40.0
	if p.Density != want {
		t.Errorf("Expected density %f, got %f", want, p.Density)
	}
	// 2*15 + 1*20 = 50, no density bonus (0.075), +10 balance = 60
	if p.StrengthScore != 60 {
		t.Errorf("Expected score 60, got %d", p.StrengthScore)
	}
	if p.Strength != model.StrengthStrong {
		t.Errorf("Expected category %q, got %q", model.StrengthStrong, p.Strength)
	}
}

func TestAnalyze_DensityRoundedToThreeDecimals(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "palabra"
	}
	text := strings.Join(words, " ")

	premises := []model.Component{
		{Kind: model.KindPremise, Text: "palabra", StartPos: 0, EndPos: 7},
	}

	paragraphs := NewScorer().Analyze(text, premises, nil)

	if len(paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(paragraphs))
	}
	// 1/12 = 0.08333... is stored as 0.083.
	if paragraphs[0].Density != 0.083 {
		t.Errorf("Expected density 0.083, got %f", paragraphs[0].Density)
	}
}

func TestAnalyze_NoComponentsLongParagraph(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "palabra"
	}
	text := strings.Join(words, " ")

	paragraphs := NewScorer().Analyze(text, nil, nil)

	if len(paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(paragraphs))
	}
	p := paragraphs[0]

	// 0 - 5*floor(60/50) = -5, clamped to 0
	if p.StrengthScore != 0 {
		t.Errorf("Expected score 0, got %d", p.StrengthScore)
	}
	if p.Strength != model.StrengthWeak {
		t.Errorf("Expected category %q, got %q", model.StrengthWeak, p.Strength)
	}
	if p.Recommendation != recommendAddPremises {
		t.Errorf("Expected %q, got %q", recommendAddPremises, p.Recommendation)
	}
	if p.Density != 0.0 {
		t.Errorf("Expected density 0.0, got %f", p.Density)
	}
}
