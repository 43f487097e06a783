package notify

import (
	"fmt"
	"os"
	"strings"

	"github.com/crosscheck-ai/crosscheck"
)

// LogSink appends one human-readable timestamped line per response to a
// plain-text log file.
type LogSink struct {
	path string
}

func NewLogSink(path string) *LogSink {
	return &LogSink{path: path}
}

func (s *LogSink) OnNewResponse(r *crosscheck.Response) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", s.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s | %s | %s | %s\n",
		r.Timestamp.Format("2006-01-02 15:04:05"),
		r.Provider,
		flatten(r.Prompt),
		flatten(r.Text))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("error writing %s: %w", s.path, err)
	}
	return nil
}

// flatten keeps each log entry on a single line.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
