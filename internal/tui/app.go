package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mt/efkctl/internal/model"
	"github.com/mt/efkctl/internal/sampler"
)

type connState int

const (
	stateConnected    connState = iota
	stateDisconnected connState = iota
)

// Runner is the part of the sampler the TUI drives. One call is one pass.
type Runner interface {
	Run(ctx context.Context) (*sampler.Result, error)
}

// App is the root Bubble Tea model for watch mode.
type App struct {
	runner    Runner
	interval  time.Duration
	namespace string

	// Pass state
	sampling bool // true while a sampleCmd goroutine is in-flight
	result   *sampler.Result
	summary  model.RunSummary
	rows     []model.NodeRow
	history  *model.RateHistory

	// Connection state
	connState        connState
	consecutiveFails int
	lastError        error
	lastUpdated      time.Time

	// Layout
	width, height int

	// UI state
	showHelp  bool
	sortCol   int // 1-indexed table column, report.SortRows semantics
	page      int // 0-indexed node table page
	search    string
	searching bool
	input     textinput.Model
}

// NewApp creates a watch-mode App sampling through r every interval.
func NewApp(r Runner, interval time.Duration, namespace string) *App {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 80
	return &App{
		runner:    r,
		interval:  interval,
		namespace: namespace,
		history:   model.NewRateHistory(0),
		connState: stateDisconnected,
		sortCol:   1,
		sampling:  true, // Init() always issues an immediate sampleCmd
		input:     ti,
	}
}

// Init implements tea.Model. Starts the first pass immediately on launch.
func (app *App) Init() tea.Cmd {
	return sampleCmd(app.runner)
}

// Update implements tea.Model, the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case SampleMsg:
		app.sampling = false
		app.result = msg.Result
		app.summary = msg.Summary
		app.rows = model.Rows(msg.Result.Aggregates)
		app.history.Push(model.RatePoint{
			Timestamp:     msg.Summary.SampledAt,
			BytesPerSec:   msg.Summary.BytesPerSec,
			RecordsPerSec: msg.Summary.RecordsPerSec,
		})
		app.consecutiveFails = 0
		app.lastError = nil
		app.connState = stateConnected
		app.lastUpdated = msg.Summary.SampledAt
		app.clampPage()
		return app, tickCmd(app.interval)

	case SampleErrorMsg:
		app.sampling = false
		app.consecutiveFails++
		app.lastError = msg.Err
		app.connState = stateDisconnected
		backoff := backoffDuration(app.consecutiveFails)
		return app, tea.Tick(backoff, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case TickMsg:
		if app.sampling {
			return app, nil
		}
		app.sampling = true
		return app, sampleCmd(app.runner)

	case tea.KeyMsg:
		if app.searching {
			return app.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Sample):
			if app.sampling {
				return app, nil
			}
			app.sampling = true
			return app, sampleCmd(app.runner)
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		case key.Matches(msg, keys.Search):
			app.searching = true
			app.input.SetValue(app.search)
			app.input.Focus()
			return app, textinput.Blink
		case key.Matches(msg, keys.Escape):
			app.search = ""
			app.input.SetValue("")
			app.page = 0
		case key.Matches(msg, keys.PrevPage):
			if app.page > 0 {
				app.page--
			}
		case key.Matches(msg, keys.NextPage):
			app.page++
			app.clampPage()
		default:
			if col := digitToCol(msg.String()); col > 0 {
				app.sortCol = col
				app.page = 0
			}
		}
	}

	return app, nil
}

// updateSearch routes key events to the filter input while it has focus.
// Enter applies the filter, escape cancels the edit.
func (app *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		app.searching = false
		app.input.Blur()
		if app.input.Value() == "" {
			app.search = ""
		}
		return app, nil
	case msg.String() == "enter":
		app.search = app.input.Value()
		app.searching = false
		app.input.Blur()
		app.page = 0
		return app, nil
	default:
		var cmd tea.Cmd
		app.input, cmd = app.input.Update(msg)
		return app, cmd
	}
}

// clampPage keeps the page index inside the filtered row count.
func (app *App) clampPage() {
	pc := pageCount(len(filterRows(app.rows, app.search)), nodePageSize)
	if app.page >= pc {
		app.page = pc - 1
	}
	if app.page < 0 {
		app.page = 0
	}
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	var parts []string

	if h := renderHeader(app); h != "" {
		parts = append(parts, h)
	}
	if c := renderRateCards(app); c != "" {
		parts = append(parts, c)
	}
	if t := renderNodeTable(app); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// tickCmd schedules the next pass after duration d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleCmd is a Bubble Tea command that runs one sampling pass and returns a
// SampleMsg or SampleErrorMsg. No timeout is imposed here: each collection
// command bounds itself via the since-window it carries.
func sampleCmd(r Runner) tea.Cmd {
	return func() tea.Msg {
		res, err := r.Run(context.Background())
		if err != nil {
			return SampleErrorMsg{Err: err}
		}
		sum, err := res.Summary()
		if err != nil {
			// A pass with zero records has no derivable rates; surface it
			// like any other failed pass and let the next tick retry.
			return SampleErrorMsg{Err: err}
		}
		return SampleMsg{Result: res, Summary: sum}
	}
}

// digitToCol converts a "1"–"8" key string to a 1-indexed table column.
// Returns 0 for any other string.
func digitToCol(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '8' {
		return int(s[0]-'1') + 1
	}
	return 0
}

// backoffDuration returns min(2^fails * time.Second, 60*time.Second).
// At fails=1: 2s, fails=2: 4s, fails=3: 8s, ..., fails>=6: 60s.
func backoffDuration(fails int) time.Duration {
	const maxBackoff = 60 * time.Second
	if fails <= 0 {
		return time.Second
	}
	if fails >= 6 {
		return maxBackoff
	}
	return time.Duration(1<<fails) * time.Second
}
