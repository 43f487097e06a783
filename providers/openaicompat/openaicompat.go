// Package openaicompat implements a client for OpenAI-compatible
// chat-completions endpoints. Both the openai and groq providers are thin
// wrappers around it that fix the endpoint, API key variable, and default
// model.
package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/crosscheck-ai/crosscheck/retry"
	"github.com/crosscheck-ai/crosscheck/slogger"
)

var (
	DefaultMaxTokens     = 4096
	DefaultMaxRetries    = 3
	DefaultRetryBaseWait = 1 * time.Second
	DefaultClient        = &http.Client{Timeout: 120 * time.Second}
)

var _ crosscheck.LLM = &Provider{}

type Provider struct {
	name          string
	apiKey        string
	endpoint      string
	model         string
	systemPrompt  string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
	client        *http.Client
	logger        slogger.Logger
}

func New(opts ...Option) *Provider {
	p := &Provider{
		name:          "openai-compatible",
		maxTokens:     DefaultMaxTokens,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
		client:        DefaultClient,
		logger:        slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string { return p.name }

// Model returns the model this provider sends requests for.
func (p *Provider) Model() string { return p.model }

// Generate sends the prompt as a single user message and returns the text of
// the first choice.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%s: api key is not set", p.name)
	}
	if prompt == "" {
		return "", fmt.Errorf("%s: empty prompt", p.name)
	}

	request := Request{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages:  []Message{{Role: "user", Content: prompt}},
	}
	if p.systemPrompt != "" {
		request.Messages = append([]Message{{
			Role:    "system",
			Content: p.systemPrompt,
		}}, request.Messages...)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	var result Response
	err = retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusTooManyRequests {
				p.logger.Warn("rate limit exceeded",
					"provider", p.name, "status", resp.StatusCode)
			}
			return providers.NewProviderError(p.name, resp.StatusCode, string(respBody))
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	}, retry.WithMaxAttempts(p.maxRetries+1), retry.WithBaseWait(p.retryBaseWait))

	if err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s api", p.name)
	}
	return result.Choices[0].Message.Content, nil
}
