package tagger

import (
	"context"
	"testing"

	"argumenta/internal/model"
)

func TestHeuristic_TokenizeOffsets(t *testing.T) {
	tokens := tokenize("El cielo, es azul.")

	expected := []string{"El", "cielo", ",", "es", "azul", "."}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	text := "El cielo, es azul."
	for i, want := range expected {
		if tokens[i].Text != want {
			t.Errorf("Token %d: expected %q, got %q", i, want, tokens[i].Text)
		}
		if !tokens[i].HasOffsets() {
			t.Fatalf("Token %d: missing offsets", i)
		}
		if got := text[*tokens[i].Start:*tokens[i].End]; got != want {
			t.Errorf("Token %d: offsets cover %q, want %q", i, got, want)
		}
	}
}

func TestHeuristic_PremiseMarkerOpensRun(t *testing.T) {
	p := NewHeuristicProvider()

	tokens, labels, err := p.Tag(context.Background(), "Hay que invertir porque la demanda crece.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tokens) != len(labels) {
		t.Fatalf("Token/label length mismatch: %d vs %d", len(tokens), len(labels))
	}

	byText := map[string]model.Label{}
	for i, tok := range tokens {
		byText[tok.Text] = labels[i]
	}

	if byText["porque"] != model.LabelPremiseBegin {
		t.Errorf("Expected 'porque' labeled B-P, got %s", byText["porque"])
	}
	if byText["demanda"] != model.LabelPremiseInside {
		t.Errorf("Expected 'demanda' labeled I-P, got %s", byText["demanda"])
	}
	if byText["Hay"] != model.LabelOutside {
		t.Errorf("Expected 'Hay' labeled O, got %s", byText["Hay"])
	}
	// The run closes at the period.
	if byText["."] != model.LabelOutside {
		t.Errorf("Expected '.' labeled O, got %s", byText["."])
	}
}

func TestHeuristic_MultiWordConclusionMarker(t *testing.T) {
	p := NewHeuristicProvider()

	tokens, labels, err := p.Tag(context.Background(), "Por lo tanto debemos actuar ahora. Nada más.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// "Por" begins the run, "lo tanto debemos actuar ahora" continue it, and
	// the sentence end closes it before "Nada".
	wantPrefix := []model.Label{
		model.LabelConclusionBegin,  // Por
		model.LabelConclusionInside, // lo
		model.LabelConclusionInside, // tanto
		model.LabelConclusionInside, // debemos
		model.LabelConclusionInside, // actuar
		model.LabelConclusionInside, // ahora
		model.LabelOutside,          // .
		model.LabelOutside,          // Nada
	}
	for i, want := range wantPrefix {
		if labels[i] != want {
			t.Errorf("Token %d (%q): expected %s, got %s", i, tokens[i].Text, want, labels[i])
		}
	}
}

func TestHeuristic_SwitchesClassMidRun(t *testing.T) {
	p := NewHeuristicProvider()

	tokens, labels, err := p.Tag(context.Background(), "porque llueve entonces me quedo")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	byText := map[string]model.Label{}
	for i, tok := range tokens {
		byText[tok.Text] = labels[i]
	}

	if byText["llueve"] != model.LabelPremiseInside {
		t.Errorf("Expected 'llueve' labeled I-P, got %s", byText["llueve"])
	}
	if byText["entonces"] != model.LabelConclusionBegin {
		t.Errorf("Expected 'entonces' labeled B-C, got %s", byText["entonces"])
	}
	if byText["quedo"] != model.LabelConclusionInside {
		t.Errorf("Expected 'quedo' labeled I-C, got %s", byText["quedo"])
	}
}

func TestHeuristic_NoMarkersAllOutside(t *testing.T) {
	p := NewHeuristicProvider()

	_, labels, err := p.Tag(context.Background(), "El cielo es azul y el agua moja")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i, l := range labels {
		if l != model.LabelOutside {
			t.Errorf("Label %d: expected O, got %s", i, l)
		}
	}
}

func TestHeuristic_EmptyText(t *testing.T) {
	p := NewHeuristicProvider()

	tokens, labels, err := p.Tag(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tokens) != 0 || len(labels) != 0 {
		t.Errorf("Expected empty sequences, got %d tokens, %d labels", len(tokens), len(labels))
	}
}
