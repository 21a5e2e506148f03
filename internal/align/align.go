package align

import (
	"strings"

	"argumenta/internal/model"
)

// Span is a resolved [Start,End) character range for one token.
type Span struct {
	Start int
	End   int
}

// Resolve guarantees every token a character span in text. Tokens that
// already carry offsets pass through unchanged. For the rest, a cursor scans
// left to right: each token is searched for starting at the cursor, which
// advances past every placed token so repeated surface forms never re-match
// an earlier occurrence. A token that cannot be found (normalization
// differences between tokenizer and source are common) is placed at the
// cursor as a best-effort approximation rather than reported as an error.
func Resolve(tokens []model.Token, text string) []Span {
	spans := make([]Span, len(tokens))

	cursor := 0
	for i, tok := range tokens {
		if tok.HasOffsets() {
			spans[i] = Span{Start: *tok.Start, End: *tok.End}
			cursor = spans[i].End
			continue
		}

		start := indexFrom(text, tok.Text, cursor)
		if start == -1 {
			start = cursor
		}
		end := start + len(tok.Text)
		spans[i] = Span{Start: start, End: end}
		cursor = end
	}

	return spans
}

// indexFrom is strings.Index with a starting offset, returning an absolute
// position in s.
func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx == -1 {
		return -1
	}
	return from + idx
}
