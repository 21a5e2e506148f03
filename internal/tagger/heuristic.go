package tagger

import (
	"context"
	"strings"
	"unicode"

	"argumenta/internal/model"
)

// HeuristicProvider is the built-in fallback tag source. It tokenizes on
// whitespace and punctuation and labels spans introduced by Spanish discourse
// markers: causal markers open premise runs, consecutive markers open
// conclusion runs, and a run extends until end-of-sentence punctuation or a
// marker of the other class. It keeps the tool usable without a trained
// sequence model; labeling quality is best-effort.
type HeuristicProvider struct {
	premiseMarkers    [][]string
	conclusionMarkers [][]string
}

// NewHeuristicProvider creates a new heuristic provider
func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{
		premiseMarkers: [][]string{
			{"porque"},
			{"ya", "que"},
			{"dado", "que"},
			{"puesto", "que"},
			{"debido", "a"},
			{"pues"},
		},
		conclusionMarkers: [][]string{
			{"por", "lo", "tanto"},
			{"por", "consiguiente"},
			{"en", "conclusión"},
			{"en", "consecuencia"},
			{"así", "que"},
			{"luego"},
			{"entonces"},
		},
	}
}

// Name returns the provider name
func (p *HeuristicProvider) Name() string {
	return "heuristic"
}

// IsAvailable always reports true: the heuristic tagger has no external
// dependency to probe.
func (p *HeuristicProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Tag tokenizes text and assigns BIO labels from discourse-marker cues.
func (p *HeuristicProvider) Tag(ctx context.Context, text string) ([]model.Token, []model.Label, error) {
	tokens := tokenize(text)
	labels := make([]model.Label, len(tokens))

	state := model.KindNone
	inRun := false

	for i := 0; i < len(tokens); i++ {
		if isSentenceEnd(tokens[i].Text) {
			labels[i] = model.LabelOutside
			state = model.KindNone
			inRun = false
			continue
		}

		if n := p.matchMarker(tokens, i, p.conclusionMarkers); n > 0 {
			p.labelRun(labels, i, n, model.KindConclusion, false)
			state = model.KindConclusion
			inRun = true
			i += n - 1
			continue
		}
		if n := p.matchMarker(tokens, i, p.premiseMarkers); n > 0 {
			p.labelRun(labels, i, n, model.KindPremise, false)
			state = model.KindPremise
			inRun = true
			i += n - 1
			continue
		}

		if inRun {
			p.labelRun(labels, i, 1, state, true)
		} else {
			labels[i] = model.LabelOutside
		}
	}

	return tokens, labels, nil
}

// matchMarker reports the token length of a marker phrase starting at index
// i, or 0 when none matches.
func (p *HeuristicProvider) matchMarker(tokens []model.Token, i int, markers [][]string) int {
	for _, marker := range markers {
		if i+len(marker) > len(tokens) {
			continue
		}
		matched := true
		for j, word := range marker {
			if strings.ToLower(tokens[i+j].Text) != word {
				matched = false
				break
			}
		}
		if matched {
			return len(marker)
		}
	}
	return 0
}

// labelRun writes n labels of the given kind starting at index i. The first
// label is B- unless continuing an already-open run.
func (p *HeuristicProvider) labelRun(labels []model.Label, i, n int, kind model.ComponentKind, continuing bool) {
	for j := 0; j < n; j++ {
		begin := j == 0 && !continuing
		switch kind {
		case model.KindPremise:
			if begin {
				labels[i+j] = model.LabelPremiseBegin
			} else {
				labels[i+j] = model.LabelPremiseInside
			}
		case model.KindConclusion:
			if begin {
				labels[i+j] = model.LabelConclusionBegin
			} else {
				labels[i+j] = model.LabelConclusionInside
			}
		default:
			labels[i+j] = model.LabelOutside
		}
	}
}

func isSentenceEnd(text string) bool {
	switch text {
	case ".", "!", "?", ";":
		return true
	}
	return false
}

// tokenize splits text into word and punctuation tokens, recording the byte
// offsets of each token in the source.
func tokenize(text string) []model.Token {
	var tokens []model.Token

	appendToken := func(start, end int) {
		s, e := start, end
		tokens = append(tokens, model.Token{
			Text:  text[start:end],
			Start: &s,
			End:   &e,
		})
	}

	start := -1
	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			if start >= 0 {
				appendToken(start, i)
				start = -1
			}
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			if start >= 0 {
				appendToken(start, i)
				start = -1
			}
			appendToken(i, i+len(string(r)))
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		appendToken(start, len(text))
	}

	return tokens
}
