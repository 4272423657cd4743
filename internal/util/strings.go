// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if
// truncated. This function properly handles ANSI escape codes and wide
// characters, making it suitable for terminal output with styling.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// JoinTruncated joins items with ", " and truncates the result to maxWidth
// visual columns. Used for one-line member listings in terminal output.
func JoinTruncated(items []string, maxWidth int) string {
	return TruncateANSI(strings.Join(items, ", "), maxWidth)
}
