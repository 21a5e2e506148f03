package tagger

import (
	"context"
	"encoding/json"
	"sync"

	"argumenta/internal/cache"
	"argumenta/internal/model"
)

// Service wraps a Provider with explicit one-time initialization, a readiness
// check, and result caching. It replaces the lazily-initialized global model
// of earlier designs: construct it once at process start, call
// EnsureInitialized, and treat "not ready" as an empty-result condition
// rather than an error.
type Service struct {
	provider Provider
	cache    cache.Cache

	initOnce sync.Once
	mu       sync.RWMutex
	ready    bool
}

// NewService creates a tagging service around the given provider. The cache
// may be nil to disable caching of tag-source output.
func NewService(provider Provider, c cache.Cache) *Service {
	return &Service{
		provider: provider,
		cache:    c,
	}
}

// EnsureInitialized probes the provider exactly once, no matter how many
// callers race on it. Safe to call repeatedly.
func (s *Service) EnsureInitialized(ctx context.Context) {
	s.initOnce.Do(func() {
		ready := s.provider != nil && s.provider.IsAvailable(ctx)
		s.mu.Lock()
		s.ready = ready
		s.mu.Unlock()
	})
}

// IsReady reports whether the underlying provider answered the availability
// probe. False before EnsureInitialized has run.
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name returns the underlying provider name, or "" when none is configured.
func (s *Service) Name() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// taggedText is the cached form of one tagging response.
type taggedText struct {
	Tokens []model.Token `json:"tokens"`
	Labels []model.Label `json:"labels"`
}

// Tag returns the token and label sequences for text. A service that is not
// ready returns empty sequences and no error; downstream stages then produce
// an empty component list.
func (s *Service) Tag(ctx context.Context, text string) ([]model.Token, []model.Label, error) {
	s.EnsureInitialized(ctx)

	if !s.IsReady() {
		return nil, nil, nil
	}

	key := cache.Key("tags:"+s.provider.Name(), text)
	if s.cache != nil {
		if data, found := s.cache.Get(key); found {
			var cached taggedText
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Tokens, cached.Labels, nil
			}
			// Corrupt entry: fall through to a fresh call
			_ = s.cache.Delete(key)
		}
	}

	tokens, labels, err := s.provider.Tag(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(taggedText{Tokens: tokens, Labels: labels}); err == nil {
			_ = s.cache.Set(key, data, 0)
		}
	}

	return tokens, labels, nil
}
