package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateANSI(t *testing.T) {
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	t.Run("plain string truncated to width", func(t *testing.T) {
		result := TruncateANSI("hello world", 8)
		if result != "hello..." {
			t.Errorf("expected 'hello...', got %q", result)
		}
	})

	t.Run("styled string preserved when short", func(t *testing.T) {
		in := redStyle.Render("hi")
		if got := TruncateANSI(in, 10); got != in {
			t.Errorf("styled string was modified: %q", got)
		}
	})

	t.Run("styled string truncated respects visual width", func(t *testing.T) {
		result := TruncateANSI(redStyle.Render("hello world"), 8)
		if width := lipgloss.Width(result); width > 8 {
			t.Errorf("result width %d exceeds maxWidth 8", width)
		}
	})

	t.Run("wide characters counted by visual width", func(t *testing.T) {
		result := TruncateANSI("日本語テスト", 8)
		if width := lipgloss.Width(result); width > 8 {
			t.Errorf("result width %d exceeds maxWidth 8", width)
		}
	})
}

func TestJoinTruncated(t *testing.T) {
	t.Run("short list joined", func(t *testing.T) {
		got := JoinTruncated([]string{"Ada", "Grace"}, 40)
		if got != "Ada, Grace" {
			t.Errorf("JoinTruncated = %q, want %q", got, "Ada, Grace")
		}
	})

	t.Run("long list truncated", func(t *testing.T) {
		got := JoinTruncated([]string{"Ada Lovelace", "Grace Hopper", "Alan Turing"}, 20)
		if lipgloss.Width(got) > 20 {
			t.Errorf("width %d exceeds 20", lipgloss.Width(got))
		}
	})
}
