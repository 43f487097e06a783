// Package groq provides the Groq provider. Groq exposes an OpenAI-compatible
// chat-completions API, so this is a thin wrapper over openaicompat with the
// Groq endpoint and key.
package groq

import (
	"os"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/crosscheck-ai/crosscheck/providers/openaicompat"
)

var (
	DefaultModel    = "llama-3.3-70b-versatile"
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	EnvKey          = "GROQ_API_KEY"
)

func init() {
	providers.Register(providers.Entry{
		Name:         "groq",
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

// New returns a Groq provider. Options are applied after the Groq defaults.
func New(opts ...openaicompat.Option) *openaicompat.Provider {
	base := []openaicompat.Option{
		openaicompat.WithName("groq"),
		openaicompat.WithAPIKey(os.Getenv(EnvKey)),
		openaicompat.WithEndpoint(DefaultEndpoint),
		openaicompat.WithModel(DefaultModel),
	}
	return openaicompat.New(append(base, opts...)...)
}
