package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mt/efkctl/internal/format"
)

// renderRateCards renders the three cluster-rate cards: log bytes, log
// records, and the journal share of the byte total.
// Wide terminals (>= 80 cols): 1x3 horizontal row.
// Narrow terminals (< 80 cols): cards stacked vertically at full width.
// Returns empty string until the first pass has completed.
func renderRateCards(app *App) string {
	if app.result == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	label := StyleDim.Render("Cluster Log Rates")

	// Each card renders at (cardWidth-2) chars wide (lipgloss Width includes
	// padding, border adds 2). For 3 cards to fill width: 3*(cardWidth-2)=width.
	cardWidth := (width + 6) / 3
	if width < 80 {
		cardWidth = width + 2
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	bytesCard := renderRateCard("Log Bytes",
		format.FormatBytes(app.summary.BytesPerSec)+"/s",
		app.history.Values("bytesPerSec"), cardWidth, colorGreen)

	recordsCard := renderRateCard("Log Records",
		format.FormatRate(app.summary.RecordsPerSec),
		app.history.Values("recordsPerSec"), cardWidth, colorCyan)

	shareCard := renderShareCard(app, cardWidth)

	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, label, bytesCard, recordsCard, shareCard)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, bytesCard, recordsCard, shareCard)
	return lipgloss.JoinVertical(lipgloss.Left, label, row)
}

// renderRateCard renders a single rate card with title, value, and sparkline.
//
// Layout (3 rows inside a rounded border):
//
//	╭──────────────────╮
//	│ Title            │   ← dim
//	│ 1.2 MB/s         │   ← bold, metric color
//	│ ▁▂▃▅▇█▇▅▃▂       │   ← colored sparkline
//	╰──────────────────╯
func renderRateCard(title, value string, sparkValues []float64, cardWidth int, color lipgloss.Color) string {
	const minCardWidth = 8
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	// Inner width = card width minus border (2) and padding (2). lipgloss
	// Width() includes padding, so content width = (cardWidth-4) - 2.
	innerWidth := cardWidth - 6
	if innerWidth < 1 {
		innerWidth = 1
	}

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleDim.Render(title),
		valueStyle.Render(value),
		RenderSparkline(sparkValues, innerWidth, color),
	))
}

// renderShareCard shows what fraction of the byte total came from the journal,
// as a percentage over a mini progress bar.
func renderShareCard(app *App, cardWidth int) string {
	const minCardWidth = 8
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	innerWidth := cardWidth - 6
	if innerWidth < 1 {
		innerWidth = 1
	}

	var share float64
	if app.summary.Bytes > 0 {
		share = float64(app.summary.JournalBytes) / float64(app.summary.Bytes) * 100
	}

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(colorPurple)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleDim.Render("Journal Share"),
		valueStyle.Render(format.FormatPercent(share)),
		StylePurple.Render(renderMiniBar(share, innerWidth)),
	))
}

// renderMiniBar renders a mini progress bar using Unicode block characters.
// Fills proportionally using "█" (U+2588) for filled and "░" (U+2591) for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
