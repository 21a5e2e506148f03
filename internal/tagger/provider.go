package tagger

import (
	"context"
	"fmt"
	"strings"

	"argumenta/internal/model"
)

// Provider defines the interface for tag sources: backends that tokenize a
// text and assign one BIO label per token.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Tag tokenizes text and returns the parallel token and label sequences.
	// Implementations must return sequences of equal length.
	Tag(ctx context.Context, text string) ([]model.Token, []model.Label, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// NewProvider creates a tag-source provider based on configuration
func NewProvider(cfg model.TaggerConfig) (Provider, error) {
	switch strings.ToLower(cfg.Mode) {
	case "remote":
		return NewRemoteProvider(cfg)

	case "heuristic", "":
		return NewHeuristicProvider(), nil

	default:
		return nil, fmt.Errorf("unknown tagger mode: %s (supported: remote, heuristic)", cfg.Mode)
	}
}
