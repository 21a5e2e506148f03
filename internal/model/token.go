package model

// Token is a single unit produced by the tag source: surface text, a
// universal POS tag, and optional character offsets into the source text.
// Offsets may be absent when the tagging backend does not report them.
type Token struct {
	Text  string `json:"text"`            // Surface form
	POS   string `json:"pos,omitempty"`   // Universal POS tag (e.g., "NOUN")
	Start *int   `json:"start,omitempty"` // Character offset, nil if unknown
	End   *int   `json:"end,omitempty"`   // Exclusive end offset, nil if unknown
}

// HasOffsets reports whether both character offsets are present.
func (t Token) HasOffsets() bool {
	return t.Start != nil && t.End != nil
}

// Label is a BIO-style tag assigned to a token by the sequence model.
type Label string

const (
	LabelPremiseBegin     Label = "B-P" // First token of a premise span
	LabelPremiseInside    Label = "I-P" // Continuation token of a premise span
	LabelConclusionBegin  Label = "B-C" // First token of a conclusion span
	LabelConclusionInside Label = "I-C" // Continuation token of a conclusion span
	LabelOutside          Label = "O"   // Not part of any argumentative span
)

// ParseLabel normalizes a raw tag value. Anything outside the known tag set
// is treated as outside rather than rejected.
func ParseLabel(raw string) Label {
	switch Label(raw) {
	case LabelPremiseBegin, LabelPremiseInside, LabelConclusionBegin, LabelConclusionInside:
		return Label(raw)
	default:
		return LabelOutside
	}
}

// Kind returns the component class the label belongs to, or KindNone for O.
func (l Label) Kind() ComponentKind {
	switch l {
	case LabelPremiseBegin, LabelPremiseInside:
		return KindPremise
	case LabelConclusionBegin, LabelConclusionInside:
		return KindConclusion
	default:
		return KindNone
	}
}
