package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"argumenta/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to the given path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable Markdown report to the given path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Análisis argumentativo: %s\n\n", report.Source))
	sb.WriteString(fmt.Sprintf("- Analizado: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC")))
	sb.WriteString(fmt.Sprintf("- Palabras: %d\n", report.WordCount))
	sb.WriteString(fmt.Sprintf("- Premisas: %d\n", report.Summary.PremisesCount))
	sb.WriteString(fmt.Sprintf("- Conclusiones: %d\n", report.Summary.ConclusionsCount))
	sb.WriteString(fmt.Sprintf("- Párrafos evaluados: %d\n\n", report.Summary.ParagraphCount))

	if len(report.Premises) > 0 {
		sb.WriteString("## Premisas\n\n")
		for i, c := range report.Premises {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Text))
		}
		sb.WriteString("\n")
	}

	if len(report.Conclusions) > 0 {
		sb.WriteString("## Conclusiones\n\n")
		for i, c := range report.Conclusions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Text))
		}
		sb.WriteString("\n")
	}

	if len(report.Paragraphs) > 0 {
		sb.WriteString("## Párrafos\n\n")
		sb.WriteString("| # | Palabras | Premisas | Conclusiones | Puntuación | Fuerza |\n")
		sb.WriteString("|---|----------|----------|--------------|------------|--------|\n")
		for i, p := range report.Paragraphs {
			sb.WriteString(fmt.Sprintf("| %d | %d | %d | %d | %d | %s |\n",
				i+1, p.WordCount, p.PremisesCount, p.ConclusionsCount, p.StrengthScore, p.Strength))
		}
		sb.WriteString("\n")

		for i, p := range report.Paragraphs {
			if p.Recommendation == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("- Párrafo %d: %s\n", i+1, p.Recommendation))
		}
		sb.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled && len(report.LLM.Suggestions) > 0 {
		sb.WriteString("## Sugerencias (LLM)\n\n")
		sb.WriteString(fmt.Sprintf("Generadas por %s (%s). No influyen en la puntuación.\n\n",
			report.LLM.Provider, report.LLM.Model))
		for _, s := range report.LLM.Suggestions {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n  %s\n", s.Kind, s.OriginalText, s.Explanation))
		}
		sb.WriteString("\n")
	}

	if r.includeFooter {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("Generado por argumenta (etiquetador: %s)\n", report.Tagger))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderSummary prints a short summary of the report to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\nSource: %s\n", report.Source)
	fmt.Printf("Words: %d | Premises: %d | Conclusions: %d | Paragraphs: %d\n",
		report.WordCount,
		report.Summary.PremisesCount,
		report.Summary.ConclusionsCount,
		report.Summary.ParagraphCount)

	if report.Summary.ParagraphCount > 0 {
		fmt.Printf("Strength: mean %.1f, max %d, min %d\n",
			report.Summary.MeanStrength,
			report.Summary.StrongestStrength,
			report.Summary.WeakestStrength)
	}

	for i, p := range report.Paragraphs {
		marker := strengthMarker(p.StrengthScore)
		fmt.Printf("  %s Paragraph %d: %d/100 (%s)\n", marker, i+1, p.StrengthScore, p.Strength)
		if p.Recommendation != "" {
			fmt.Printf("     ↳ %s\n", p.Recommendation)
		}
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Printf("LLM suggestions: %d (%s)\n", len(report.LLM.Suggestions), report.LLM.Provider)
		for _, w := range report.LLM.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}
}

func strengthMarker(score int) string {
	switch {
	case score >= 70:
		return "●"
	case score >= 50:
		return "◕"
	case score >= 30:
		return "◑"
	default:
		return "○"
	}
}
