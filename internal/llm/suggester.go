package llm

import (
	"context"
	"fmt"
	"sort"

	"argumenta/internal/model"
	"argumenta/internal/worker"
)

// Suggester generates improvement suggestions for extracted components.
// Suggestions are advisory only and never feed back into scoring.
type Suggester struct {
	provider Provider
	limiter  *worker.Limiter
	config   Config
}

// NewSuggester creates a suggester from configuration. A disabled
// configuration (empty provider) yields a suggester whose IsEnabled reports
// false.
func NewSuggester(config Config) (*Suggester, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.Rate
	if rps <= 0 {
		rps = 2
	}

	return &Suggester{
		provider: provider,
		limiter:  worker.NewLimiter(rps, 1),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Suggester) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (s *Suggester) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// suggestionResult carries one component's outcome back from the pool.
type suggestionResult struct {
	index      int
	suggestion model.Suggestion
	err        error
}

func (r *suggestionResult) GetError() error { return r.err }

// suggestionJob asks the provider for one component's suggestion, waiting on
// the shared rate limiter first.
type suggestionJob struct {
	index     int
	component model.Component
	suggester *Suggester
}

func (j *suggestionJob) Execute(ctx context.Context) worker.Result {
	if err := j.suggester.limiter.Wait(ctx, j.suggester.limiterKey()); err != nil {
		return &suggestionResult{index: j.index, err: err}
	}

	resp, err := j.suggester.provider.Suggest(ctx, SuggestRequest{Component: j.component})
	if err != nil {
		return &suggestionResult{index: j.index, err: err}
	}

	return &suggestionResult{
		index: j.index,
		suggestion: model.Suggestion{
			Kind:         j.component.Kind,
			OriginalText: j.component.Text,
			Explanation:  resp.Explanation,
			TokensUsed:   resp.TokensUsed,
		},
	}
}

// GenerateSuggestions produces one suggestion per component, premises first.
// Individual failures are recorded as warnings and skip the component; they
// never fail the analysis. A disabled or unavailable provider returns nil.
func (s *Suggester) GenerateSuggestions(ctx context.Context, premises, conclusions []model.Component) (*model.LLMSuggestions, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.LLMSuggestions{
			Enabled:  true,
			Provider: s.provider.Name(),
			Model:    s.config.Model,
			Warnings: []string{fmt.Sprintf("provider %s is not available", s.provider.Name())},
		}, nil
	}

	components := make([]model.Component, 0, len(premises)+len(conclusions))
	components = append(components, premises...)
	components = append(components, conclusions...)

	if len(components) == 0 {
		return &model.LLMSuggestions{
			Enabled:  true,
			Provider: s.provider.Name(),
			Model:    s.config.Model,
		}, nil
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = 4
	}

	pool := worker.NewPoolContext(ctx, workers)
	pool.Start()

	for i, c := range components {
		pool.Submit(&suggestionJob{index: i, component: c, suggester: s})
	}

	results := pool.Wait()

	out := &model.LLMSuggestions{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    s.config.Model,
	}

	collected := make([]suggestionResult, 0, len(results))
	for _, r := range results {
		sr := r.(*suggestionResult)
		if sr.err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("suggestion for component %d failed: %v", sr.index, sr.err))
			continue
		}
		collected = append(collected, *sr)
	}

	// Pool results arrive in completion order; restore component order.
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })
	for _, sr := range collected {
		out.Suggestions = append(out.Suggestions, sr.suggestion)
	}

	return out, nil
}

// limiterKey buckets rate limiting by provider endpoint.
func (s *Suggester) limiterKey() string {
	if s.config.BaseURL != "" {
		return s.config.BaseURL
	}
	return "https://" + s.provider.Name() + ".api"
}
