package crosscheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	r := NewResponse("openai", "gpt-4o-mini", "hello?", "hi")
	require.NotEmpty(t, r.ID)
	require.Equal(t, "openai", r.Provider)
	require.Equal(t, "gpt-4o-mini", r.Model)
	require.Equal(t, "hello?", r.Prompt)
	require.Equal(t, "hi", r.Text)
	require.False(t, r.Timestamp.IsZero())

	other := NewResponse("openai", "gpt-4o-mini", "hello?", "hi")
	require.NotEqual(t, r.ID, other.ID)
}

func TestLastAnswersOverwrite(t *testing.T) {
	answers := NewLastAnswers()
	require.Equal(t, 0, answers.Len())
	require.Nil(t, answers.Get("openai"))

	answers.Set(NewResponse("openai", "", "q1", "first"))
	answers.Set(NewResponse("openai", "", "q2", "second"))

	require.Equal(t, 1, answers.Len())
	require.Equal(t, "second", answers.Get("openai").Text)
}

func TestLastAnswersProviderOrder(t *testing.T) {
	answers := NewLastAnswers()
	answers.Set(NewResponse("groq", "", "q", "a"))
	answers.Set(NewResponse("openai", "", "q", "b"))
	answers.Set(NewResponse("groq", "", "q", "c"))

	// First-seen order is stable across overwrites
	require.Equal(t, []string{"groq", "openai"}, answers.Providers())
}
