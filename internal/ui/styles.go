package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Tile styles for rendered feedback rows
	Correct lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Word      lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Hint      lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconSolved  string
	IconError   string
	IconWarning string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Tile styles mirror the puzzle's colors
		s.Correct = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")) // Green
		s.Present = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")) // Yellow
		s.Absent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))  // Gray

		// Structural styles
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Word = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))   // Cyan
		s.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // Blue
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))              // Red
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))           // Green
		s.Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))              // Yellow

		// Unicode icons
		s.IconSolved = "✓"  // check mark
		s.IconError = "✗"   // cross
		s.IconWarning = "⚠" // warning sign
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Correct = lipgloss.NewStyle()
		s.Present = lipgloss.NewStyle()
		s.Absent = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Word = lipgloss.NewStyle()
		s.Prompt = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Hint = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconSolved = "OK:"
		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
