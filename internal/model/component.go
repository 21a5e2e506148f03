package model

// ComponentKind categorizes an argumentative component
type ComponentKind string

const (
	KindNone       ComponentKind = ""           // Not an argumentative component
	KindPremise    ComponentKind = "premise"    // Supporting statement
	KindConclusion ComponentKind = "conclusion" // Synthesizing claim
)

// Component is a contiguous argumentative span decoded from the tag sequence.
// Text is the space-joined token run, which is not necessarily an exact
// substring of the source (inter-token whitespace and punctuation spacing are
// discarded during tokenization). StartPos/EndPos are character offsets into
// the source text. Components are immutable after extraction.
type Component struct {
	Kind          ComponentKind `json:"kind"`           // premise or conclusion
	Text          string        `json:"text"`           // Space-joined token run
	Tokens        []string      `json:"tokens"`         // Token surface forms, in order
	StartPos      int           `json:"start_pos"`      // Offset of the first token
	EndPos        int           `json:"end_pos"`        // Exclusive end of the last token
	SequenceOrder int           `json:"sequence_order"` // 0-based rank within its class
}

// Midpoint returns the character midpoint of the component span, used to
// attribute the component to a paragraph.
func (c Component) Midpoint() float64 {
	return float64(c.StartPos+c.EndPos) / 2
}
