package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/config"
	"github.com/crosscheck-ai/crosscheck/notify"
	"github.com/crosscheck-ai/crosscheck/slogger"
	"github.com/spf13/cobra"
)

const defaultProvider = "openai"

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask one provider a question",
	Long:  "Ask one provider a question. The response is echoed and recorded to the configured sinks.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		broadcaster, cleanup, err := newBroadcaster(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		provider := llmProvider
		if provider == "" {
			provider = defaultProvider
		}
		_, err = askProvider(context.Background(), logger, broadcaster, provider, llmModel, args[0])
		return err
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// askProvider resolves the provider, sends the prompt, and broadcasts the
// resulting response. The per-request timeout comes from the --timeout flag.
func askProvider(ctx context.Context, logger slogger.Logger, broadcaster *notify.Broadcaster, provider, modelName, prompt string) (*crosscheck.Response, error) {
	model, err := config.GetModel(provider, modelName)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	started := time.Now()
	text, err := model.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("error asking %s: %w", provider, err)
	}
	logger.Debug("provider answered",
		"provider", provider,
		"latency", time.Since(started).String(),
		"chars", len(text))

	response := crosscheck.NewResponse(provider, resolveModelName(model), prompt, text)
	broadcaster.Notify(response)
	return response, nil
}

// resolveModelName reports the concrete model when the provider exposes it.
func resolveModelName(model crosscheck.LLM) string {
	if m, ok := model.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}
