package notify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/fatih/color"
)

var (
	consoleHeaderStyle = color.New(color.FgCyan, color.Bold)
	consoleLabelStyle  = color.New(color.FgWhite, color.Faint)
)

// ConsoleSink echoes each response to a writer, typically stdout.
type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) OnNewResponse(r *crosscheck.Response) error {
	fmt.Fprintln(s.out)
	consoleHeaderStyle.Fprintln(s.out, "=== New Response ===")
	fmt.Fprintf(s.out, "%s %s\n", consoleLabelStyle.Sprint("Provider:"), r.Provider)
	if r.Model != "" {
		fmt.Fprintf(s.out, "%s %s\n", consoleLabelStyle.Sprint("Model:"), r.Model)
	}
	fmt.Fprintf(s.out, "%s %s\n", consoleLabelStyle.Sprint("Time:"), r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(s.out, "%s %s\n", consoleLabelStyle.Sprint("Prompt:"), r.Prompt)
	fmt.Fprintf(s.out, "%s %s\n", consoleLabelStyle.Sprint("Answer:"), r.Text)
	return nil
}
