package cli

import (
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	successStyle = color.New(color.FgGreen)
	mutedStyle   = color.New(color.FgWhite, color.Faint)
)

// truncate shortens text to the given display width, accounting for wide
// characters, and appends an ellipsis when anything was cut.
func truncate(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
