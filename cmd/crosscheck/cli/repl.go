package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/eval"
	"github.com/crosscheck-ai/crosscheck/providers"
)

// runREPL drives the interactive menu: pick a provider, ask a question,
// compare the last answers, quit. Provider errors are reported and the loop
// continues; only startup problems are fatal.
func runREPL(in io.Reader, out io.Writer) error {
	names := providers.Names()
	if len(names) == 0 {
		return errors.New("no providers are registered")
	}

	logger := newLogger()
	broadcaster, cleanup, err := newBroadcaster(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	evaluator := eval.NewEvaluator(eval.EvaluatorOptions{Logger: logger})
	answers := crosscheck.NewLastAnswers()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		printMenu(out, names)
		choice, ok := readLine(scanner)
		if !ok {
			return nil // EOF ends the session gracefully
		}

		n, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil || n < 1 || n > len(names)+2 {
			fmt.Fprintln(out, warningStyle.Sprint("Invalid option"))
			continue
		}

		switch {
		case n <= len(names):
			provider := names[n-1]
			fmt.Fprint(out, "Your question: ")
			prompt, ok := readLine(scanner)
			if !ok {
				return nil
			}
			if strings.TrimSpace(prompt) == "" {
				fmt.Fprintln(out, warningStyle.Sprint("Empty question"))
				continue
			}
			response, err := askProvider(context.Background(), logger, broadcaster, provider, llmModel, prompt)
			if err != nil {
				fmt.Fprintln(out, errorStyle.Sprintf("Error: %s", err))
				continue
			}
			answers.Set(response)

		case n == len(names)+1:
			reports, err := evaluator.CompareAll(answers)
			if err != nil {
				if errors.Is(err, eval.ErrInsufficientData) {
					fmt.Fprintln(out, warningStyle.Sprint("Need answers from at least two providers first"))
					continue
				}
				fmt.Fprintln(out, errorStyle.Sprintf("Error: %s", err))
				continue
			}
			fmt.Fprintln(out)
			headerStyle.Fprintln(out, "Comparison Results")
			printLastAnswers(out, answers)
			renderReports(out, reports)

		default:
			fmt.Fprintln(out, mutedStyle.Sprint("Bye"))
			return nil
		}
	}
}

func printMenu(out io.Writer, names []string) {
	fmt.Fprintln(out)
	headerStyle.Fprintln(out, "=== crosscheck ===")
	for i, name := range names {
		fmt.Fprintf(out, "  %d. Ask %s\n", i+1, name)
	}
	fmt.Fprintf(out, "  %d. Compare last answers\n", len(names)+1)
	fmt.Fprintf(out, "  %d. Quit\n", len(names)+2)
	fmt.Fprint(out, "Choose an option: ")
}

func printLastAnswers(out io.Writer, answers *crosscheck.LastAnswers) {
	for _, provider := range answers.Providers() {
		r := answers.Get(provider)
		fmt.Fprintf(out, "%s %s\n",
			mutedStyle.Sprintf("%s:", provider),
			truncate(strings.ReplaceAll(r.Text, "\n", " "), 72))
	}
	fmt.Fprintln(out)
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
