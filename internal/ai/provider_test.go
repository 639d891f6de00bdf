package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderConfigured(t *testing.T) {
	assert.False(t, NewOpenAIProvider(config.AIConfig{}).Configured())
	assert.True(t, NewOpenAIProvider(config.AIConfig{API_KEY: "sk-test"}).Configured())
}

func TestOpenAIProviderComplete(t *testing.T) {
	var gotBody oaiChatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(oaiChatResponse{
			Choices: []struct {
				Message oaiMessage `json:"message"`
			}{
				{Message: oaiMessage{Role: "assistant", Content: "  Use soft neutrals.  "}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(config.AIConfig{
		BaseURL: server.URL + "/v1",
		API_KEY: "sk-test",
		Model:   "gpt-4",
	})

	text, err := provider.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "You are a designer.",
		UserPrompt:   "Pick a palette.",
		MaxTokens:    500,
		Temperature:  0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Use soft neutrals.", text)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, 500, gotBody.MaxTokens)
}

func TestOpenAIProviderUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(oaiErrorResponse{})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(config.AIConfig{
		BaseURL: server.URL + "/v1",
		API_KEY: "sk-bad",
		Model:   "gpt-4",
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	assert.Error(t, err)
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(oaiChatResponse{})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(config.AIConfig{
		BaseURL: server.URL + "/v1",
		API_KEY: "sk-test",
		Model:   "gpt-4",
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	assert.Error(t, err)
}

func TestAnalyzePromptDefaults(t *testing.T) {
	req := AnalyzePrompt("Kitchen Remodel", "", "")
	assert.Contains(t, req.UserPrompt, "Kitchen Remodel")
	assert.Contains(t, req.UserPrompt, "No description provided")
	assert.Contains(t, req.UserPrompt, "No files uploaded yet.")
	assert.Equal(t, 1500, req.MaxTokens)
}
