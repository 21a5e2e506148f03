package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"argumenta/internal/align"
	"argumenta/internal/cache"
	"argumenta/internal/extract"
	"argumenta/internal/llm"
	"argumenta/internal/model"
	"argumenta/internal/score"
	"argumenta/internal/segment"
	"argumenta/internal/tagger"
)

// Pipeline orchestrates the complete analysis: tag, align, extract, score,
// and optionally suggest.
type Pipeline struct {
	tagger    *tagger.Service
	extractor *extract.ComponentExtractor
	scorer    *score.Scorer
	fetcher   *Fetcher
	renderer  *Renderer
	suggester *llm.Suggester // Optional LLM suggester (nil if disabled)
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := tagger.NewProvider(cfg.Tagger)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}

	var tagCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			tagCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			tagCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	// Create LLM suggester if configured
	var suggester *llm.Suggester
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM, cfg.Concurrency.SuggestionWorkers)
		s, err := llm.NewSuggester(llmConfig)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			suggester = s
		}
	}

	return &Pipeline{
		tagger:    tagger.NewService(provider, tagCache),
		extractor: extract.NewComponentExtractor(),
		scorer:    score.NewScorer(),
		fetcher:   NewFetcher(cfg.HTTP),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		suggester: suggester,
		config:    cfg,
	}, nil
}

// AnalyzeText runs the full analysis over raw text. The source string only
// labels the report; it is never dereferenced here.
func (p *Pipeline) AnalyzeText(ctx context.Context, text, source string) (*model.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty input text")
	}

	// 1. Tag tokens. A tagger that is not ready yields empty sequences and
	// the analysis degrades to an empty component list.
	tokens, rawLabels, err := p.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}

	// 2. Resolve token offsets against the source text
	spans := align.Resolve(tokens, text)

	// 3. Decode BIO labels into components
	premises, conclusions, err := p.extractor.Extract(tokens, spans, rawLabels)
	if err != nil {
		return nil, fmt.Errorf("extract components: %w", err)
	}

	// 4. Segment and score paragraphs
	paragraphs := p.scorer.Analyze(text, premises, conclusions)

	// 5. Build report (without LLM suggestions yet)
	report := &model.Report{
		Source:      source,
		AnalyzedAt:  time.Now().UTC(),
		WordCount:   segment.WordCount(text),
		Premises:    premises,
		Conclusions: conclusions,
		Paragraphs:  paragraphs,
		Summary:     model.BuildSummary(premises, conclusions, paragraphs),
		Tagger:      p.tagger.Name(),
	}

	// 6. Generate LLM suggestions if enabled (AFTER scoring, never affects scores)
	if p.suggester != nil && p.suggester.IsEnabled() {
		suggestions, err := p.suggester.GenerateSuggestions(ctx, premises, conclusions)
		if err != nil {
			// Don't fail the entire analysis, just warn
			fmt.Printf("Warning: LLM suggestion generation failed: %v\n", err)
		} else if suggestions != nil {
			report.LLM = suggestions
		}
	}

	return report, nil
}

// AnalyzeURL fetches a URL, extracts its readable text, and analyzes it.
func (p *Pipeline) AnalyzeURL(ctx context.Context, url string) (*model.Report, error) {
	fetchResult, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	return p.AnalyzeText(ctx, fetchResult.Text, fetchResult.FinalURL)
}

// AnalyzeFile reads a text file and analyzes its contents.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return p.AnalyzeText(ctx, string(data), path)
}

// AnalyzeSource dispatches on the source form: URLs are fetched, anything
// else is treated as a file path. This is the entry point batch mode uses.
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.AnalyzeURL(ctx, source)
	}
	return p.AnalyzeFile(ctx, source)
}

// TaggerName returns the configured tag source name.
func (p *Pipeline) TaggerName() string {
	return p.tagger.Name()
}

// RenderReport renders the report to the configured outputs.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}
