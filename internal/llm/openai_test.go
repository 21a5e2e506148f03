package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"argumenta/internal/model"
	"github.com/sashabaranov/go-openai"
)

func premiseComponent() model.Component {
	return model.Component{
		Kind:     model.KindPremise,
		Text:     "la demanda crece cada año",
		StartPos: 10,
		EndPos:   35,
	}
}

func TestOpenAIProvider_Suggest_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		// Return success response
		resp := openai.ChatCompletionResponse{
			ID:      "chatcmpl-123",
			Object:  "chat.completion",
			Created: 1677652288,
			Model:   "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "Añade una cifra concreta que respalde la afirmación.",
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{
				TotalTokens: 100,
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	// Create provider
	config := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Suggest(context.Background(), SuggestRequest{Component: premiseComponent()})
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if resp.Explanation != "Añade una cifra concreta que respalde la afirmación." {
		t.Errorf("Unexpected explanation: %s", resp.Explanation)
	}
	if resp.TokensUsed != 100 {
		t.Errorf("Expected 100 tokens used, got %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_Suggest_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "Internal Server Error", "type": "server_error"}}`))
	}))
	defer server.Close()

	config := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Suggest(context.Background(), SuggestRequest{Component: premiseComponent()})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestNewOpenAIProvider_MissingKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestBuildPrompt_ComponentKinds(t *testing.T) {
	premise := model.Component{Kind: model.KindPremise, Text: "el agua hierve a cien grados"}
	conclusion := model.Component{Kind: model.KindConclusion, Text: "debemos hervir el agua"}

	premisePrompt := BuildPrompt(premise)
	if !strings.Contains(premisePrompt, "PREMISA") || !strings.Contains(premisePrompt, premise.Text) {
		t.Errorf("Premise prompt missing label or text: %s", premisePrompt)
	}

	conclusionPrompt := BuildPrompt(conclusion)
	if !strings.Contains(conclusionPrompt, "CONCLUSIÓN") || !strings.Contains(conclusionPrompt, conclusion.Text) {
		t.Errorf("Conclusion prompt missing label or text: %s", conclusionPrompt)
	}
}
