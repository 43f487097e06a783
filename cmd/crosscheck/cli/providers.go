package cli

// Provider packages register themselves with the registry in init().
import (
	_ "github.com/crosscheck-ai/crosscheck/providers/groq"
	_ "github.com/crosscheck-ai/crosscheck/providers/openai"
)
