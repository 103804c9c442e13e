// Package history provides an in-memory recorder for the orchestrator's
// success handoff. Retention is a fixed-capacity ring; nothing is persisted.
package history

import (
	"context"
	"sync"
	"time"

	"distcalc/domain/core"
	"distcalc/ports"
)

// DefaultCapacity is the number of calculations retained before the oldest
// entry is overwritten.
const DefaultCapacity = 10

// Entry is one recorded calculation
type Entry struct {
	ID core.CalculationID     `json:"id"`
	At time.Time              `json:"at"`
	ports.CalculationRecord   `json:"record"`
}

// MemoryRecorder is a circular buffer of the most recent calculations.
// Safe for concurrent use.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
	head    int
	count   int
}

// NewMemoryRecorder creates a recorder with the given capacity; values below
// one fall back to DefaultCapacity.
func NewMemoryRecorder(capacity int) *MemoryRecorder {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &MemoryRecorder{entries: make([]Entry, capacity)}
}

// Record appends a calculation, overwriting the oldest entry once full
func (r *MemoryRecorder) Record(_ context.Context, rec ports.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = Entry{
		ID:                core.NewCalculationID(),
		At:                time.Now(),
		CalculationRecord: rec,
	}
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}
	return nil
}

// Entries returns the recorded calculations, most recent first
func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, r.count)
	for i := 0; i < r.count; i++ {
		idx := (r.head - 1 - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out
}

// Len returns the number of retained entries
func (r *MemoryRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Clear drops all retained entries
func (r *MemoryRecorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		r.entries[i] = Entry{}
	}
	r.head = 0
	r.count = 0
}
