// Package trace provides a passive, append-only accumulator of diagnostic
// entries produced while generating, parsing, or mutating input against a
// Grammar. It does no I/O or formatting; a caller renders or inspects the
// entries after the operation completes.
package trace

import "sync"

// Accumulator collects Entry values as an operation progresses. It is
// safe for concurrent use.
//
// Create an Accumulator exclusively through New().
type Accumulator struct {
	phase   string
	entries []Entry
	mu      sync.Mutex
}

// New returns an empty Accumulator with no active phase.
func New() *Accumulator {
	return &Accumulator{}
}

// SetPhase sets the operation name subsequent entries are tagged with.
func (a *Accumulator) SetPhase(name string) {
	a.mu.Lock()
	a.phase = name
	a.mu.Unlock()
}

func (a *Accumulator) record(severity string, pos Position, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, Entry{severity: severity, phase: a.phase, position: pos, message: message})
}

// Error records a severity-"error" entry.
func (a *Accumulator) Error(pos Position, message string) { a.record(SeverityError, pos, message) }

// Warn records a severity-"warn" entry.
func (a *Accumulator) Warn(pos Position, message string) { a.record(SeverityWarn, pos, message) }

// Info records a severity-"info" entry.
func (a *Accumulator) Info(pos Position, message string) { a.record(SeverityInfo, pos, message) }

// Entries returns all recorded entries in insertion order.
func (a *Accumulator) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// HasErrors reports whether any severity-"error" entry was recorded.
func (a *Accumulator) HasErrors() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of recorded entries.
func (a *Accumulator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
