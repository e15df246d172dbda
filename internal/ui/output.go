package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
)

// Success returns a success message with checkmark symbol
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Hint returns muted hint text
func Hint(msg string) string {
	return Muted.Render(msg)
}
