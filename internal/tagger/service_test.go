package tagger

import (
	"context"
	"testing"
	"time"

	"argumenta/internal/cache"
	"argumenta/internal/model"
)

// stubProvider counts Tag calls and can simulate an unavailable backend.
type stubProvider struct {
	available bool
	calls     int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) IsAvailable(ctx context.Context) bool { return p.available }

func (p *stubProvider) Tag(ctx context.Context, text string) ([]model.Token, []model.Label, error) {
	p.calls++
	return []model.Token{{Text: text}}, []model.Label{model.LabelOutside}, nil
}

func TestService_NotReadyYieldsEmptyResults(t *testing.T) {
	svc := NewService(&stubProvider{available: false}, nil)

	tokens, labels, err := svc.Tag(context.Background(), "algo")
	if err != nil {
		t.Fatalf("Expected no error from unready service, got %v", err)
	}
	if len(tokens) != 0 || len(labels) != 0 {
		t.Errorf("Expected empty sequences, got %d tokens, %d labels", len(tokens), len(labels))
	}
	if svc.IsReady() {
		t.Error("Expected service to report not ready")
	}
}

func TestService_InitializesOnce(t *testing.T) {
	provider := &stubProvider{available: true}
	svc := NewService(provider, nil)

	svc.EnsureInitialized(context.Background())
	svc.EnsureInitialized(context.Background())

	if !svc.IsReady() {
		t.Error("Expected service to be ready after initialization")
	}
}

func TestService_CachesTagOutput(t *testing.T) {
	provider := &stubProvider{available: true}
	svc := NewService(provider, cache.NewMemoryCache(time.Minute, time.Minute))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		tokens, _, err := svc.Tag(ctx, "texto repetido")
		if err != nil {
			t.Fatalf("Tag %d: expected no error, got %v", i, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("Tag %d: expected 1 token, got %d", i, len(tokens))
		}
	}

	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call with caching, got %d", provider.calls)
	}
}

func TestService_DistinctTextsMissCache(t *testing.T) {
	provider := &stubProvider{available: true}
	svc := NewService(provider, cache.NewMemoryCache(time.Minute, time.Minute))

	ctx := context.Background()
	_, _, _ = svc.Tag(ctx, "primero")
	_, _, _ = svc.Tag(ctx, "segundo")

	if provider.calls != 2 {
		t.Errorf("Expected 2 provider calls for distinct texts, got %d", provider.calls)
	}
}
