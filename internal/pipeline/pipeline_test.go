package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"argumenta/internal/model"
)

const testEssay = "La energía solar reduce los costes porque el sol no cobra nada a nadie en este mundo.\n\n" +
	"Por lo tanto conviene instalar paneles solares en los tejados de todas las casas."

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.LLM.Provider = ""
	cfg.HTTP.CheckRobots = false
	return cfg
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(testConfig())
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	return p
}

func TestPipeline_AnalyzeText(t *testing.T) {
	p := newTestPipeline(t)

	report, err := p.AnalyzeText(context.Background(), testEssay, "ensayo.txt")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if report.Source != "ensayo.txt" {
		t.Errorf("expected source ensayo.txt, got %s", report.Source)
	}
	if report.Tagger != "heuristic" {
		t.Errorf("expected heuristic tagger, got %s", report.Tagger)
	}
	if len(report.Premises) != 1 {
		t.Fatalf("expected 1 premise, got %d", len(report.Premises))
	}
	if !strings.HasPrefix(report.Premises[0].Text, "porque") {
		t.Errorf("unexpected premise text: %s", report.Premises[0].Text)
	}
	if len(report.Conclusions) != 1 {
		t.Fatalf("expected 1 conclusion, got %d", len(report.Conclusions))
	}
	if !strings.HasPrefix(report.Conclusions[0].Text, "Por lo tanto") {
		t.Errorf("unexpected conclusion text: %s", report.Conclusions[0].Text)
	}

	if len(report.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(report.Paragraphs))
	}
	if report.Paragraphs[0].PremisesCount != 1 || report.Paragraphs[0].ConclusionsCount != 0 {
		t.Errorf("paragraph 1: expected 1 premise / 0 conclusions, got %d / %d",
			report.Paragraphs[0].PremisesCount, report.Paragraphs[0].ConclusionsCount)
	}
	if report.Paragraphs[1].ConclusionsCount != 1 {
		t.Errorf("paragraph 2: expected 1 conclusion, got %d", report.Paragraphs[1].ConclusionsCount)
	}

	if report.Summary.ParagraphCount != 2 {
		t.Errorf("expected summary over 2 paragraphs, got %d", report.Summary.ParagraphCount)
	}
	if report.LLM != nil {
		t.Error("expected no LLM block when provider is disabled")
	}
}

func TestPipeline_AnalyzeText_Empty(t *testing.T) {
	p := newTestPipeline(t)

	if _, err := p.AnalyzeText(context.Background(), "", "vacío"); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := p.AnalyzeText(context.Background(), "   \n\n  ", "blanco"); err == nil {
		t.Error("expected error for whitespace-only text")
	}
}

func TestPipeline_AnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ensayo.txt")
	if err := os.WriteFile(path, []byte(testEssay), 0644); err != nil {
		t.Fatal(err)
	}

	p := newTestPipeline(t)
	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if report.Source != path {
		t.Errorf("expected source %s, got %s", path, report.Source)
	}
	if len(report.Premises) != 1 {
		t.Errorf("expected 1 premise, got %d", len(report.Premises))
	}
}

func TestPipeline_AnalyzeFile_Missing(t *testing.T) {
	p := newTestPipeline(t)
	if _, err := p.AnalyzeFile(context.Background(), "no_such_essay.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPipeline_AnalyzeSource_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprint(w, testEssay)
	}))
	defer server.Close()

	p := newTestPipeline(t)
	report, err := p.AnalyzeSource(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("AnalyzeSource failed: %v", err)
	}
	if !strings.HasPrefix(report.Source, "http://") {
		t.Errorf("expected URL source, got %s", report.Source)
	}
	if len(report.Conclusions) != 1 {
		t.Errorf("expected 1 conclusion, got %d", len(report.Conclusions))
	}
}

func TestPipeline_RenderReport(t *testing.T) {
	p := newTestPipeline(t)
	report, err := p.AnalyzeText(context.Background(), testEssay, "ensayo.txt")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if decoded.Source != "ensayo.txt" {
		t.Errorf("round-tripped source mismatch: %s", decoded.Source)
	}
	if len(decoded.Paragraphs) != 2 {
		t.Errorf("expected 2 paragraphs in JSON, got %d", len(decoded.Paragraphs))
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if !strings.Contains(string(md), "## Premisas") {
		t.Error("markdown missing premises section")
	}
	if !strings.Contains(string(md), "| # | Palabras |") {
		t.Error("markdown missing paragraph table")
	}
}
