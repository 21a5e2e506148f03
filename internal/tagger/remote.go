package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"argumenta/internal/model"
)

// RemoteProvider is an HTTP client for a sequence-tagging service: a server
// wrapping the trained model that tokenizes text and labels each token.
type RemoteProvider struct {
	baseURL    string
	httpClient *http.Client
}

// Remote tagging API structures
type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Tokens []struct {
		Text  string `json:"text"`
		POS   string `json:"pos,omitempty"`
		Start *int   `json:"start,omitempty"`
		End   *int   `json:"end,omitempty"`
	} `json:"tokens"`
	Labels []string `json:"labels"`
}

type tagError struct {
	Error string `json:"error"`
}

// NewRemoteProvider creates a new remote provider
func NewRemoteProvider(cfg model.TaggerConfig) (*RemoteProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("remote tagger requires an endpoint URL")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &RemoteProvider{
		baseURL: strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Name returns the provider name
func (p *RemoteProvider) Name() string {
	return "remote"
}

// IsAvailable checks if the tagging service answers its health endpoint
func (p *RemoteProvider) IsAvailable(ctx context.Context) bool {
	url := fmt.Sprintf("%s/health", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Tag posts text to the tagging service and decodes the parallel token and
// label sequences. Unrecognized label values are normalized to O here so the
// rest of the pipeline only ever sees the known tag set.
func (p *RemoteProvider) Tag(ctx context.Context, text string) ([]model.Token, []model.Label, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/tag", p.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr tagError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, nil, fmt.Errorf("tagger error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, nil, fmt.Errorf("tagger error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp tagResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, nil, fmt.Errorf("unmarshal response: %w", err)
	}

	tokens := make([]model.Token, len(resp.Tokens))
	for i, t := range resp.Tokens {
		tokens[i] = model.Token{Text: t.Text, POS: t.POS, Start: t.Start, End: t.End}
	}

	labels := make([]model.Label, len(resp.Labels))
	for i, raw := range resp.Labels {
		labels[i] = model.ParseLabel(raw)
	}

	return tokens, labels, nil
}
