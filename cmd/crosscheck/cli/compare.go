package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/eval"
	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [prompt]",
	Short: "Ask multiple providers the same question and compare the answers",
	Long: `Ask multiple providers the same question, record every answer, and run all
comparison strategies over each pair of answers.

Examples:
  crosscheck compare "Explain TCP slow start"
  crosscheck compare "Explain TCP slow start" --providers openai,groq
  crosscheck compare "Explain TCP slow start" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providersFlag, err := cmd.Flags().GetString("providers")
		if err != nil {
			return err
		}
		jsonOut, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		var names []string
		if providersFlag != "" {
			names = strings.Split(providersFlag, ",")
		} else {
			names = providers.Names()
		}
		return runCompare(args[0], names, jsonOut)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().String("providers", "", "Comma-separated providers to query (default: all registered)")
	compareCmd.Flags().Bool("json", false, "Print reports as JSON instead of a table")
}

func runCompare(prompt string, names []string, jsonOut bool) error {
	logger := newLogger()
	broadcaster, cleanup, err := newBroadcaster(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	answers := crosscheck.NewLastAnswers()
	for _, name := range names {
		name = strings.TrimSpace(name)
		response, err := askProvider(context.Background(), logger, broadcaster, name, llmModel, prompt)
		if err != nil {
			// One provider failing aborts only that provider's turn
			fmt.Println(warningStyle.Sprintf("⚠ %s", err))
			continue
		}
		answers.Set(response)
	}

	evaluator := eval.NewEvaluator(eval.EvaluatorOptions{Logger: logger})
	reports, err := evaluator.CompareAll(answers)
	if err != nil {
		return err
	}

	if jsonOut {
		encoded, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Println()
	headerStyle.Println("Comparison Results")
	renderReports(os.Stdout, reports)
	return nil
}
