package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorFloor:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDozer:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorSpecial:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFalling:  lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorSpace:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorHint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
