package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/stretchr/testify/require"
)

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf)

	r := crosscheck.NewResponse("openai", "gpt-4o-mini", "what is a fox?", "a small canid")
	require.NoError(t, sink.OnNewResponse(r))

	out := buf.String()
	require.Contains(t, out, "openai")
	require.Contains(t, out, "gpt-4o-mini")
	require.Contains(t, out, "what is a fox?")
	require.Contains(t, out, "a small canid")
}

func TestFileSinkAppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.json")
	sink := NewFileSink(path)

	first := crosscheck.NewResponse("openai", "", "q1", "a1")
	second := crosscheck.NewResponse("groq", "", "q2", "a2")
	require.NoError(t, sink.OnNewResponse(first))
	require.NoError(t, sink.OnNewResponse(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	archived, err := ReadArchive(path)
	require.NoError(t, err)
	require.Len(t, archived, 2)
	require.Equal(t, first.ID, archived[0].ID)
	require.Equal(t, "a1", archived[0].Text)
	require.Equal(t, "groq", archived[1].Provider)
}

func TestReadArchiveMissingFile(t *testing.T) {
	archived, err := ReadArchive(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, archived)
}

func TestLogSinkFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.log")
	sink := NewLogSink(path)

	r := crosscheck.NewResponse("groq", "", "why?", "because\nof\nreasons")
	require.NoError(t, sink.OnNewResponse(r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	require.Contains(t, line, "| groq |")
	require.Contains(t, line, "| why? |")
	// Multi-line answers are flattened onto one log line
	require.Contains(t, line, "because of reasons")
	require.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.db")
	sink, err := NewSQLiteSink(path)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.OnNewResponse(crosscheck.NewResponse("openai", "gpt-4o-mini", "q", "a")))
	require.NoError(t, sink.OnNewResponse(crosscheck.NewResponse("groq", "", "q", "b")))

	total, err := sink.Count("")
	require.NoError(t, err)
	require.Equal(t, 2, total)

	openaiOnly, err := sink.Count("openai")
	require.NoError(t, err)
	require.Equal(t, 1, openaiOnly)
}
