package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lexro/wordlehint/internal/solver"
)

// MarkStyle returns the tile style for a single feedback mark.
func (s *Styles) MarkStyle(m solver.Mark) lipgloss.Style {
	switch m {
	case solver.Correct:
		return s.Correct
	case solver.Present:
		return s.Present
	default:
		return s.Absent
	}
}

// Tiles renders guess as a colored tile row for fb. Without styling it
// degrades to the word next to the digit form.
func (s *Styles) Tiles(guess solver.Word, fb solver.Feedback) string {
	if !s.enabled {
		return guess.String() + " " + fb.String()
	}

	var b strings.Builder
	for i := 0; i < solver.WordLength; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.MarkStyle(fb[i]).Render(" " + string(guess[i]) + " "))
	}
	return b.String()
}
