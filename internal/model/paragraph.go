package model

// Strength categories, ordered strongest to weakest. Spanish labels are part
// of the observable contract of the original analysis service.
const (
	StrengthVeryStrong = "muy fuerte" // score >= 70
	StrengthStrong     = "fuerte"     // score >= 50
	StrengthModerate   = "moderada"   // score >= 30
	StrengthWeak       = "débil"      // everything below
)

// Paragraph is the per-paragraph analysis of argumentative strength.
// StartPos/EndPos are character offsets of the paragraph in the source text.
// Paragraphs are derived once per analysis and immutable after creation.
type Paragraph struct {
	Text             string  `json:"text"`
	StartPos         int     `json:"start_pos"`
	EndPos           int     `json:"end_pos"`
	WordCount        int     `json:"word_count"`
	PremisesCount    int     `json:"premises_count"`
	ConclusionsCount int     `json:"conclusions_count"`
	Density          float64 `json:"density"`        // components per word
	StrengthScore    int     `json:"strength_score"` // 0-100
	Strength         string  `json:"strength"`       // category label
	Recommendation   string  `json:"recommendation,omitempty"`
}
