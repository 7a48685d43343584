package model

import "time"

const defaultHistoryCap = 60

// RatePoint is a single timestamped cluster rate sample stored in the ring buffer.
type RatePoint struct {
	Timestamp     time.Time
	BytesPerSec   int64
	RecordsPerSec int64
}

// RateHistory is a fixed-size ring buffer of RatePoints.
// When the buffer is full, new pushes overwrite the oldest entry.
type RateHistory struct {
	buf  []RatePoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewRateHistory creates a RateHistory with the given capacity.
// If cap <= 0, the defaultHistoryCap (60) is used.
func NewRateHistory(capacity int) *RateHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &RateHistory{
		buf: make([]RatePoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *RateHistory) Push(p RatePoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *RateHistory) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *RateHistory) Clear() {
	h.head = 0
	h.size = 0
}

// Values returns a slice of float64 for the named field in chronological order
// (oldest first). Valid field names: "bytesPerSec", "recordsPerSec".
func (h *RateHistory) Values(field string) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		p := h.buf[(start+i)%len(h.buf)]
		switch field {
		case "bytesPerSec":
			out[i] = float64(p.BytesPerSec)
		case "recordsPerSec":
			out[i] = float64(p.RecordsPerSec)
		}
	}
	return out
}
