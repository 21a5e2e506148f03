package segment

import "strings"

// minParagraphWords filters out headings, greetings, and stray lines that are
// too short to analyze as argumentative units.
const minParagraphWords = 10

// Located is a paragraph candidate with recovered character offsets into the
// original text.
type Located struct {
	Text  string
	Start int
	End   int
}

// Split breaks text on blank-line boundaries and keeps trimmed candidates
// with at least ten whitespace-delimited words.
func Split(text string) []string {
	var paragraphs []string
	for _, candidate := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		if len(strings.Fields(trimmed)) < minParagraphWords {
			continue
		}
		paragraphs = append(paragraphs, trimmed)
	}
	return paragraphs
}

// Locate recovers each paragraph's offsets in the original text. Search is
// monotonic: the cursor advances past each located paragraph so repeated
// paragraph text never matches the same region twice. When the exact trimmed
// string is not found, a whitespace-normalized form is tried to tolerate
// formatting differences. A paragraph that still cannot be located is
// dropped; that is deliberate policy, not a failure.
func Locate(text string, paragraphs []string) []Located {
	var located []Located

	cursor := 0
	for _, p := range paragraphs {
		start := indexFrom(text, p, cursor)
		end := start + len(p)
		if start == -1 {
			normalized := strings.Join(strings.Fields(p), " ")
			start = indexFrom(text, normalized, cursor)
			if start == -1 {
				continue
			}
			end = start + len(normalized)
		}

		located = append(located, Located{Text: p, Start: start, End: end})
		cursor = end
	}

	return located
}

// Paragraphs splits and locates in one pass.
func Paragraphs(text string) []Located {
	return Locate(text, Split(text))
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

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
