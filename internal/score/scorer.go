package score

import (
	"math"
	"strings"

	"argumenta/internal/model"
	"argumenta/internal/segment"
)

// Recommendation strings, first matching rule wins. Spanish wording is part
// of the observable contract of the original analysis service.
const (
	recommendAddPremises    = "Añade premisas que sustenten tus afirmaciones"
	recommendAddConclusions = "Incluye conclusiones que sinteticen las ideas"
	recommendLowDensity     = "Considera hacer el párrafo más conciso o añadir más argumentación"
	recommendTooLong        = "Párrafo extenso, considera dividirlo para mayor claridad"
)

// Scorer computes paragraph-level argumentative-strength metrics.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Analyze segments text into paragraphs and scores each one against the
// extracted components. The result order follows text order.
func (s *Scorer) Analyze(text string, premises, conclusions []model.Component) []model.Paragraph {
	located := segment.Paragraphs(text)

	paragraphs := make([]model.Paragraph, 0, len(located))
	for _, para := range located {
		paragraphs = append(paragraphs, s.scoreParagraph(para, premises, conclusions))
	}

	return paragraphs
}

func (s *Scorer) scoreParagraph(para segment.Located, premises, conclusions []model.Component) model.Paragraph {
	premisesCount := countInParagraph(para, premises)
	conclusionsCount := countInParagraph(para, conclusions)

	wordCount := segment.WordCount(para.Text)
	density := 0.0
	if wordCount > 0 {
		density = float64(premisesCount+conclusionsCount) / float64(wordCount)
	}

	strengthScore, strength := Strength(premisesCount, conclusionsCount, wordCount, density)

	// Scoring and the recommendation rules see the full-precision density;
	// the stored value is rounded for reporting.
	return model.Paragraph{
		Text:             para.Text,
		StartPos:         para.Start,
		EndPos:           para.End,
		WordCount:        wordCount,
		PremisesCount:    premisesCount,
		ConclusionsCount: conclusionsCount,
		Density:          roundDensity(density),
		StrengthScore:    strengthScore,
		Strength:         strength,
		Recommendation:   Recommendation(premisesCount, conclusionsCount, density, wordCount),
	}
}

// roundDensity rounds to the three decimals reports carry.
func roundDensity(d float64) float64 {
	return math.Round(d*1000) / 1000
}

// countInParagraph counts components whose character midpoint falls inside
// the paragraph's [Start,End) range. Components without a usable span fall
// back to substring containment of their joined text in the paragraph text.
func countInParagraph(para segment.Located, components []model.Component) int {
	count := 0
	for _, c := range components {
		if c.EndPos > c.StartPos {
			mid := c.Midpoint()
			if float64(para.Start) <= mid && mid < float64(para.End) {
				count++
			}
		} else if strings.Contains(para.Text, c.Text) {
			count++
		}
	}
	return count
}

// Strength computes the deterministic 0-100 strength score and its category:
//
//	score = 15*premises + 20*conclusions
//	+20 when density > 0.15
//	+10 when both classes are present
//	-5 per full 50 words when no components at all
//	clamped to [0,100]
func Strength(premisesCount, conclusionsCount, wordCount int, density float64) (int, string) {
	score := premisesCount*15 + conclusionsCount*20

	if density > 0.15 {
		score += 20
	}

	if premisesCount > 0 && conclusionsCount > 0 {
		score += 10
	}

	if premisesCount+conclusionsCount == 0 {
		score -= (wordCount / 50) * 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, categorize(score)
}

func categorize(score int) string {
	switch {
	case score >= 70:
		return model.StrengthVeryStrong
	case score >= 50:
		return model.StrengthStrong
	case score >= 30:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}

// Recommendation returns the first matching improvement hint, or "" when the
// paragraph needs none.
func Recommendation(premisesCount, conclusionsCount int, density float64, wordCount int) string {
	switch {
	case premisesCount == 0:
		return recommendAddPremises
	case conclusionsCount == 0:
		return recommendAddConclusions
	case density < 0.1:
		return recommendLowDensity
	case wordCount > 150:
		return recommendTooLong
	}
	return ""
}
