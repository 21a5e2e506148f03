package extract

import (
	"fmt"
	"strings"

	"argumenta/internal/align"
	"argumenta/internal/model"
)

// MisalignedSequenceError reports a length mismatch between the token
// sequence and its labels or spans. The extractor assumes strict 1:1
// alignment and fails fast rather than silently truncating.
type MisalignedSequenceError struct {
	Tokens int
	Labels int
	Spans  int
}

func (e *MisalignedSequenceError) Error() string {
	if e.Spans != e.Tokens {
		return fmt.Sprintf("misaligned sequences: %d tokens, %d spans", e.Tokens, e.Spans)
	}
	return fmt.Sprintf("misaligned sequences: %d tokens, %d labels", e.Tokens, e.Labels)
}

// run accumulates one contiguous span of same-class tokens. It is reset on
// every flush so state never leaks between spans.
type run struct {
	tokens []string
	start  int
	end    int
}

func (r *run) open() bool { return len(r.tokens) > 0 }

func (r *run) add(text string, span align.Span) {
	if !r.open() {
		r.start = span.Start
	}
	r.tokens = append(r.tokens, text)
	r.end = span.End
}

func (r *run) flush(kind model.ComponentKind, order int) model.Component {
	c := model.Component{
		Kind:          kind,
		Text:          strings.Join(r.tokens, " "),
		Tokens:        r.tokens,
		StartPos:      r.start,
		EndPos:        r.end,
		SequenceOrder: order,
	}
	*r = run{}
	return c
}

// ComponentExtractor decodes a BIO tag sequence into ordered premise and
// conclusion components.
type ComponentExtractor struct{}

// NewComponentExtractor creates a new component extractor
func NewComponentExtractor() *ComponentExtractor {
	return &ComponentExtractor{}
}

// Extract runs two independent accumulators, one per class, over the token
// sequence. A token whose label belongs to a class extends that class's open
// run (B- and I- are treated alike: a stray I- without a preceding B- still
// starts a span). Any other label closes the run and emits a component whose
// text is the space-joined token run and whose offsets cover the first
// through last token. Open runs are flushed after the final token.
//
// The single-label tag set makes it impossible for one token to extend both
// classes at once; that exclusivity is a precondition on the tag source, not
// something enforced here.
//
// Components of the same kind are emitted in non-decreasing StartPos order
// and SequenceOrder equals their 0-based emission rank.
func (e *ComponentExtractor) Extract(tokens []model.Token, spans []align.Span, labels []model.Label) (premises, conclusions []model.Component, err error) {
	if len(tokens) != len(labels) {
		return nil, nil, &MisalignedSequenceError{Tokens: len(tokens), Labels: len(labels), Spans: len(tokens)}
	}
	if len(tokens) != len(spans) {
		return nil, nil, &MisalignedSequenceError{Tokens: len(tokens), Labels: len(tokens), Spans: len(spans)}
	}

	var premiseRun, conclusionRun run

	for i, tok := range tokens {
		kind := labels[i].Kind()

		if kind == model.KindPremise {
			premiseRun.add(tok.Text, spans[i])
		} else if premiseRun.open() {
			premises = append(premises, premiseRun.flush(model.KindPremise, len(premises)))
		}

		if kind == model.KindConclusion {
			conclusionRun.add(tok.Text, spans[i])
		} else if conclusionRun.open() {
			conclusions = append(conclusions, conclusionRun.flush(model.KindConclusion, len(conclusions)))
		}
	}

	if premiseRun.open() {
		premises = append(premises, premiseRun.flush(model.KindPremise, len(premises)))
	}
	if conclusionRun.open() {
		conclusions = append(conclusions, conclusionRun.flush(model.KindConclusion, len(conclusions)))
	}

	return premises, conclusions, nil
}

// ParseLabels maps raw tag values onto the known label set, treating any
// unrecognized value as outside.
func ParseLabels(raw []string) []model.Label {
	labels := make([]model.Label, len(raw))
	for i, r := range raw {
		labels[i] = model.ParseLabel(r)
	}
	return labels
}
