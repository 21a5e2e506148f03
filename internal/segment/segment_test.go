package segment

import (
	"strings"
	"testing"
)

const longPara = "Este párrafo contiene suficientes palabras para superar el umbral mínimo de diez"

func TestSplit_BlankLineBoundaries(t *testing.T) {
	text := longPara + "\n\n" + longPara + " otra vez"

	paragraphs := Split(text)

	if len(paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0] != longPara {
		t.Errorf("Expected first paragraph trimmed, got %q", paragraphs[0])
	}
}

func TestSplit_ShortParagraphsDropped(t *testing.T) {
	text := "Título corto\n\n" + longPara + "\n\nGracias por leer"

	paragraphs := Split(text)

	if len(paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(paragraphs))
	}
	for _, p := range paragraphs {
		if len(strings.Fields(p)) < 10 {
			t.Errorf("Paragraph with fewer than 10 words emitted: %q", p)
		}
	}
}

func TestSplit_EmptyAndWhitespaceOnly(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Errorf("Expected no paragraphs for empty text, got %d", len(got))
	}
	if got := Split("\n\n   \n\n\t\n\n"); len(got) != 0 {
		t.Errorf("Expected no paragraphs for whitespace, got %d", len(got))
	}
}

func TestLocate_RecoversOffsets(t *testing.T) {
	second := longPara + " con una continuación distinta"
	text := longPara + "\n\n" + second

	located := Paragraphs(text)

	if len(located) != 2 {
		t.Fatalf("Expected 2 located paragraphs, got %d", len(located))
	}
	if located[0].Start != 0 || located[0].End != len(longPara) {
		t.Errorf("Expected first at [0,%d), got [%d,%d)", len(longPara), located[0].Start, located[0].End)
	}
	wantStart := len(longPara) + 2
	if located[1].Start != wantStart {
		t.Errorf("Expected second at %d, got %d", wantStart, located[1].Start)
	}
	if text[located[1].Start:located[1].End] != second {
		t.Error("Second paragraph offsets do not cover its text")
	}
}

func TestLocate_RepeatedParagraphsAdvance(t *testing.T) {
	text := longPara + "\n\n" + longPara

	located := Paragraphs(text)

	if len(located) != 2 {
		t.Fatalf("Expected 2 located paragraphs, got %d", len(located))
	}
	if located[0].Start == located[1].Start {
		t.Error("Repeated paragraph matched the same region twice")
	}
	if located[1].Start < located[0].End {
		t.Errorf("Second match at %d overlaps first ending at %d", located[1].Start, located[0].End)
	}
}

func TestLocate_NormalizedFallback(t *testing.T) {
	// The trimmed candidate has inner whitespace collapsed relative to the
	// source, so the exact search misses but the normalized one hits.
	messy := "Este  párrafo   contiene suficientes palabras para superar el umbral mínimo"
	normalized := strings.Join(strings.Fields(messy), " ")
	text := "prefacio\n\n" + normalized

	located := Locate(text, []string{messy})

	if len(located) != 1 {
		t.Fatalf("Expected 1 located paragraph via normalized fallback, got %d", len(located))
	}
	if text[located[0].Start:located[0].End] != normalized {
		t.Error("Normalized fallback offsets do not cover the normalized text")
	}
}

func TestLocate_UnfindableParagraphDropped(t *testing.T) {
	located := Locate("texto completamente distinto", []string{longPara})

	if len(located) != 0 {
		t.Errorf("Expected unfindable paragraph to be dropped, got %d", len(located))
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"una", 1},
		{"una  dos\ttres\ncuatro", 4},
	}

	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
