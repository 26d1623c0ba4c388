package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Styles applies terminal styling, or passes text through unchanged
// when styling is off. Resolve it once per run with NewStyles.
type Styles struct {
	enabled bool
}

// NewStyles returns the styles for this run. Styling requires the
// config to allow it, stdout to be a terminal, and no NO_COLOR or
// TERM=dumb override.
func NewStyles(configEnabled bool) Styles {
	return Styles{enabled: configEnabled && ansiEnabled()}
}

// PlainStyles returns styles that never color, for JSON or piped
// output paths that bypass terminal detection.
func PlainStyles() Styles {
	return Styles{}
}

// Enabled reports whether styling is active.
func (s Styles) Enabled() bool { return s.enabled }

// Success styles confirmation text.
func (s Styles) Success(text string) string { return s.render(successStyle, text) }

// Error styles failure text.
func (s Styles) Error(text string) string { return s.render(errorStyle, text) }

// Warning styles caution text.
func (s Styles) Warning(text string) string { return s.render(warningStyle, text) }

// Info styles neutral notice text.
func (s Styles) Info(text string) string { return s.render(infoStyle, text) }

// Muted styles low-emphasis text.
func (s Styles) Muted(text string) string { return s.render(mutedStyle, text) }

// Bold styles emphasized text.
func (s Styles) Bold(text string) string { return s.render(boldStyle, text) }

// Highlight styles text that demands attention, like overdue dates.
func (s Styles) Highlight(text string) string { return s.render(highlightStyle, text) }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
