package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter renders the bottom hint line: the full key map when help is
// toggled on, otherwise a short hint with the completed pass count on the
// right once sampling has produced history.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	if app.showHelp {
		return StyleDim.Width(width).Render(helpText)
	}

	left := "? for help"
	var right string
	if n := app.history.Len(); n > 0 {
		right = fmt.Sprintf("passes: %d", n)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return StyleDim.Width(width).Render(left)
	}
	return StyleDim.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
