package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/crosscheck-ai/crosscheck/config"
	"github.com/crosscheck-ai/crosscheck/notify"
	"github.com/crosscheck-ai/crosscheck/slogger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	llmProvider   string
	llmModel      string
	logLevel      string
	noColor       bool
	envFile       string
	responsesFile string
	logFilePath   string
	dbPath        string
	askTimeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Ask multiple LLM providers the same question and compare their answers",
	Long: `crosscheck sends prompts to multiple LLM providers (OpenAI, Groq) and
compares the answers with word-count, sequence-alignment, and TF-IDF cosine
similarity metrics.

Run with no arguments for the interactive menu, or use the ask and compare
subcommands directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		return config.LoadEnv(envFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&llmProvider, "provider", "", "LLM provider to use (e.g. 'openai', 'groq')")
	flags.StringVarP(&llmModel, "model", "m", "", "Model to use (defaults to the provider's default)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&envFile, "env-file", "", "Dotenv file to load (default ./.env)")
	flags.StringVar(&responsesFile, "responses-file", "responses.json", "JSONL file responses are appended to")
	flags.StringVar(&logFilePath, "log-file", "responses.log", "Plain-text log file for responses")
	flags.StringVar(&dbPath, "db", "", "SQLite database to archive responses into (disabled when empty)")
	flags.DurationVar(&askTimeout, "timeout", 2*time.Minute, "Timeout for a single provider request")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(errorStyle.Sprint(err))
		os.Exit(1)
	}
}

func newLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

// newBroadcaster assembles the configured response sinks. The returned
// cleanup must be called before exit to close the sqlite sink.
func newBroadcaster(logger slogger.Logger) (*notify.Broadcaster, func(), error) {
	broadcaster := notify.NewBroadcaster(logger,
		notify.NewConsoleSink(os.Stdout),
		notify.NewFileSink(responsesFile),
		notify.NewLogSink(logFilePath),
	)
	cleanup := func() {}
	if dbPath != "" {
		sink, err := notify.NewSQLiteSink(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening response archive: %w", err)
		}
		broadcaster.Attach(sink)
		cleanup = func() { sink.Close() }
	}
	return broadcaster, cleanup, nil
}
