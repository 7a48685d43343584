package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar with the watched namespace, pass
// status, and timing info.
//
// Layout:
//
//	left:   "efkctl watch  ns=<namespace>"
//	center: colored "● SAMPLING"/"● OK" indicator (or "● FAILED  <error>" after a bad pass)
//	right:  "Last: HH:MM:SS  Every: Ns" (or "Press r to retry" after a failure)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := "efkctl watch  ns=" + app.namespace

	var center, right string
	switch {
	case app.connState == stateDisconnected && app.lastError != nil:
		errMsg := app.lastError.Error()
		if len(errMsg) > 40 {
			errMsg = errMsg[:40] + "..."
		}
		center = StyleError.Render("● FAILED  " + errMsg)
		right = StyleError.Render("Press r to retry")

	case app.sampling:
		center = StyleStatusYellow.Render("● SAMPLING")
		right = StyleDim.Render("Every: " + formatDuration(app.interval))

	default:
		center = StyleStatusGreen.Render("● OK")
		lastStr := "never"
		if !app.lastUpdated.IsZero() {
			lastStr = app.lastUpdated.Format("15:04:05")
		}
		right = StyleDim.Render(fmt.Sprintf("Last: %s  Every: %s", lastStr, formatDuration(app.interval)))
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// formatDuration formats a sampling interval as a compact string, e.g. "30s" or "2m".
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
