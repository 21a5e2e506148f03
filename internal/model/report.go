package model

import "time"

// Report is the complete result of one analysis run.
type Report struct {
	Source     string    `json:"source"`      // file path, URL, or "stdin"
	AnalyzedAt time.Time `json:"analyzed_at"` // When the analysis ran
	WordCount  int       `json:"word_count"`  // Whitespace-delimited words in the input

	Premises    []Component `json:"premises"`
	Conclusions []Component `json:"conclusions"`
	Paragraphs  []Paragraph `json:"paragraphs"`

	Summary Summary `json:"summary"`

	Tagger string `json:"tagger,omitempty"` // Which tag source produced the labels

	LLM *LLMSuggestions `json:"llm,omitempty"` // Optional, never affects scores
}

// Summary aggregates the paragraph-level metrics for quick inspection.
type Summary struct {
	PremisesCount     int     `json:"premises_count"`
	ConclusionsCount  int     `json:"conclusions_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	MeanStrength      float64 `json:"mean_strength"`      // Mean paragraph score
	StrongestStrength int     `json:"strongest_strength"` // Max paragraph score
	WeakestStrength   int     `json:"weakest_strength"`   // Min paragraph score
}

// BuildSummary derives the aggregate summary from an otherwise-complete report.
func BuildSummary(premises, conclusions []Component, paragraphs []Paragraph) Summary {
	s := Summary{
		PremisesCount:    len(premises),
		ConclusionsCount: len(conclusions),
		ParagraphCount:   len(paragraphs),
	}

	if len(paragraphs) == 0 {
		return s
	}

	total := 0
	s.StrongestStrength = paragraphs[0].StrengthScore
	s.WeakestStrength = paragraphs[0].StrengthScore
	for _, p := range paragraphs {
		total += p.StrengthScore
		if p.StrengthScore > s.StrongestStrength {
			s.StrongestStrength = p.StrengthScore
		}
		if p.StrengthScore < s.WeakestStrength {
			s.WeakestStrength = p.StrengthScore
		}
	}
	s.MeanStrength = float64(total) / float64(len(paragraphs))

	return s
}

// LLMSuggestions contains optional LLM-generated improvement suggestions.
// CRITICAL: suggestions never affect scoring and are clearly separated.
type LLMSuggestions struct {
	Enabled     bool         `json:"enabled"`
	Provider    string       `json:"provider,omitempty"` // openai, anthropic, ollama
	Model       string       `json:"model,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"` // Per-component failures
}

// Suggestion is one improvement suggestion for an extracted component.
type Suggestion struct {
	Kind         ComponentKind `json:"kind"`
	OriginalText string        `json:"original_text"`
	Explanation  string        `json:"explanation"`
	TokensUsed   int           `json:"tokens_used,omitempty"`
}
