package openaicompat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGenerate(t *testing.T) {
	var gotAuth string
	var gotRequest Request
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		json.NewEncoder(w).Encode(Response{
			ID: "chatcmpl-123",
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: "The quick brown fox"}},
			},
			Usage: Usage{PromptTokens: 5, CompletionTokens: 4, TotalTokens: 9},
		})
	})

	p := New(
		WithName("openai"),
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithModel("gpt-4o-mini"),
	)

	text, err := p.Generate(context.Background(), "describe a fox briefly")
	require.NoError(t, err)
	require.Equal(t, "The quick brown fox", text)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "gpt-4o-mini", gotRequest.Model)
	require.Len(t, gotRequest.Messages, 1)
	require.Equal(t, "user", gotRequest.Messages[0].Role)
	require.Equal(t, "describe a fox briefly", gotRequest.Messages[0].Content)
}

func TestGenerateSystemPrompt(t *testing.T) {
	var gotRequest Request
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		json.NewEncoder(w).Encode(Response{
			Choices: []Choice{{Message: Message{Content: "ok"}}},
		})
	})

	p := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithSystemPrompt("answer in one word"),
	)
	_, err := p.Generate(context.Background(), "ready?")
	require.NoError(t, err)

	require.Len(t, gotRequest.Messages, 2)
	require.Equal(t, "system", gotRequest.Messages[0].Role)
	require.Equal(t, "answer in one word", gotRequest.Messages[0].Content)
	require.Equal(t, "user", gotRequest.Messages[1].Role)
}

func TestGenerateAPIError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	})

	p := New(
		WithName("groq"),
		WithAPIKey("bad-key"),
		WithEndpoint(server.URL),
	)
	_, err := p.Generate(context.Background(), "hello")
	require.Error(t, err)

	var provErr *providers.ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, http.StatusUnauthorized, provErr.StatusCode())
	require.Equal(t, "groq", provErr.Provider())
}

func TestGenerateRetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "temporarily overloaded", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(Response{
			Choices: []Choice{{Message: Message{Content: "recovered"}}},
		})
	})

	p := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithRetryBaseWait(time.Millisecond),
	)
	text, err := p.Generate(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "recovered", text)
	require.Equal(t, 2, attempts)
}

func TestGenerateMissingAPIKey(t *testing.T) {
	p := New(WithName("openai"), WithEndpoint("http://localhost:0"))
	_, err := p.Generate(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestGenerateEmptyChoices(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{})
	})

	p := New(WithAPIKey("test-key"), WithEndpoint(server.URL))
	_, err := p.Generate(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty response")
}
