package tui

import (
	"time"

	"github.com/mt/efkctl/internal/model"
	"github.com/mt/efkctl/internal/sampler"
)

// SampleMsg delivers a completed sampling pass to the TUI.
type SampleMsg struct {
	Result  *sampler.Result
	Summary model.RunSummary
}

// SampleErrorMsg signals a failed pass, including a pass that collected zero
// records and therefore has no derivable rates.
type SampleErrorMsg struct{ Err error }

// TickMsg triggers the next scheduled pass.
type TickMsg time.Time
