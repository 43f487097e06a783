// Package openai provides the OpenAI chat-completions provider.
package openai

import (
	"os"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/crosscheck-ai/crosscheck/providers/openaicompat"
)

var (
	DefaultModel    = "gpt-4o-mini"
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	EnvKey          = "OPENAI_API_KEY"
)

func init() {
	providers.Register(providers.Entry{
		Name:         "openai",
		EnvKey:       EnvKey,
		DefaultModel: DefaultModel,
		Factory:      factory,
	})
}

func factory(model string) crosscheck.LLM {
	var opts []openaicompat.Option
	if model != "" {
		opts = append(opts, openaicompat.WithModel(model))
	}
	return New(opts...)
}

// New returns an OpenAI provider. Options are applied after the OpenAI
// defaults, so callers can override the model, key, or endpoint.
func New(opts ...openaicompat.Option) *openaicompat.Provider {
	base := []openaicompat.Option{
		openaicompat.WithName("openai"),
		openaicompat.WithAPIKey(os.Getenv(EnvKey)),
		openaicompat.WithEndpoint(DefaultEndpoint),
		openaicompat.WithModel(DefaultModel),
	}
	return openaicompat.New(append(base, opts...)...)
}
