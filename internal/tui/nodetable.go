package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/mt/efkctl/internal/format"
	"github.com/mt/efkctl/internal/model"
	"github.com/mt/efkctl/internal/report"
)

// nodePageSize is how many nodes render per page; busy clusters page with
// ←/→ instead of scrolling the rate cards away.
const nodePageSize = 20

// nodeColumns are the per-node table headers in sort-index order, matching
// the static report layout.
var nodeColumns = []string{"BYTES", "RECORDS", "JOURNAL-B", "JOURNAL-R", "FILE-B", "FILE-R", "NODE", "ROLE"}

// renderNodeTable renders the "Per-Node Breakdown" section: a title bar with
// filter/sort/page hints, then the lipgloss table for the current page of
// rows sorted by the active column.
// Returns empty string until the first pass has completed.
func renderNodeTable(app *App) string {
	if app.result == nil {
		return ""
	}

	filtered := filterRows(app.rows, app.search)
	title := nodeTableTitle(app, pageCount(len(filtered), nodePageSize))

	if len(filtered) == 0 {
		empty := "  (no nodes)"
		if app.search != "" {
			empty = fmt.Sprintf("  (no nodes match %q)", app.search)
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, StyleDim.Render(empty))
	}

	// Sort a copy; app.rows keeps the node-name order it arrived in.
	rows := make([]model.NodeRow, len(filtered))
	copy(rows, filtered)
	report.SortRows(rows, app.sortCol)

	headers := make([]string, len(nodeColumns))
	for i, c := range nodeColumns {
		if i+1 == app.sortCol {
			headers[i] = c + "↑"
		} else {
			headers[i] = c
		}
	}

	sortCol := app.sortCol
	t := ltable.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				if col+1 == sortCol {
					return lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
				}
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle()
			if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			switch col {
			case 0:
				return base.Foreground(colorGreen)
			case 1:
				return base.Foreground(colorCyan)
			case 2, 3:
				return base.Foreground(colorPurple)
			case 4, 5:
				return base.Foreground(colorOrange)
			case 6:
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorBlue)
			}
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if app.width > 0 {
		t = t.Width(app.width)
	}

	start := app.page * nodePageSize
	if start >= len(rows) {
		start = 0
	}
	end := start + nodePageSize
	if end > len(rows) {
		end = len(rows)
	}
	for _, r := range rows[start:end] {
		t = t.Row(nodeCells(r)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

// nodeTableTitle renders the section title. While the filter input has focus
// its live view replaces the key hints; an applied filter shows its value.
func nodeTableTitle(app *App, pages int) string {
	pageInfo := fmt.Sprintf("Page %d/%d", app.page+1, pages)

	var hint string
	switch {
	case app.searching:
		hint = "Filter: " + app.input.View()
	case app.search != "":
		hint = fmt.Sprintf("filter=%q  %s", app.search, pageInfo)
	default:
		hint = fmt.Sprintf("[/: filter]  [1-8: sort]  [←→: page]  %s", pageInfo)
	}

	return StyleDim.Render("Per-Node Breakdown  " + hint)
}

// filterRows returns the rows whose node or role contains the filter,
// case-insensitively. An empty filter returns rows unchanged.
func filterRows(rows []model.NodeRow, filter string) []model.NodeRow {
	if filter == "" {
		return rows
	}
	f := strings.ToLower(filter)
	var out []model.NodeRow
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Node), f) || strings.Contains(strings.ToLower(r.Role), f) {
			out = append(out, r)
		}
	}
	return out
}

// pageCount returns how many pages totalRows rows occupy at pageSize rows
// per page. Always at least 1 so the title never reads "Page 1/0".
func pageCount(totalRows, pageSize int) int {
	if totalRows <= 0 || pageSize <= 0 {
		return 1
	}
	pages := totalRows / pageSize
	if totalRows%pageSize != 0 {
		pages++
	}
	return pages
}

// nodeCells formats one row in table column order.
func nodeCells(r model.NodeRow) []string {
	return []string{
		format.FormatNumber(r.Bytes),
		format.FormatNumber(r.Records),
		format.FormatNumber(r.JournalBytes),
		format.FormatNumber(r.JournalRecords),
		format.FormatNumber(r.FileBytes),
		format.FormatNumber(r.FileRecords),
		sanitize(r.Node),
		sanitize(r.Role),
	}
}

// sanitize strips control characters that would corrupt the terminal layout.
// Node and role names come straight from cluster metadata.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
