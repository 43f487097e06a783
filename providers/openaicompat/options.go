package openaicompat

import (
	"net/http"
	"time"

	"github.com/crosscheck-ai/crosscheck/slogger"
)

type Option func(*Provider)

// WithName sets the provider name used in errors and response records.
func WithName(name string) Option {
	return func(p *Provider) { p.name = name }
}

func WithAPIKey(apiKey string) Option {
	return func(p *Provider) { p.apiKey = apiKey }
}

func WithEndpoint(endpoint string) Option {
	return func(p *Provider) { p.endpoint = endpoint }
}

func WithModel(model string) Option {
	return func(p *Provider) { p.model = model }
}

func WithSystemPrompt(systemPrompt string) Option {
	return func(p *Provider) { p.systemPrompt = systemPrompt }
}

func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) { p.maxTokens = maxTokens }
}

func WithMaxRetries(maxRetries int) Option {
	return func(p *Provider) { p.maxRetries = maxRetries }
}

func WithRetryBaseWait(d time.Duration) Option {
	return func(p *Provider) { p.retryBaseWait = d }
}

func WithClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

func WithLogger(logger slogger.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}
