// Package provenance tracks, across repeated testlang.Mutate calls on one
// buffer, which Mutate generation last rewrote each byte offset. It does not
// retain literal byte history of unmutated siblings — only which generation
// most recently touched a given offset, reconstructed from the before/after
// buffers of each Mutate call.
package provenance

// Tracker is the facade for the common workflow: load a buffer, record each
// Mutate result against it in turn, and ask which generation last touched a
// given offset.
//
// Create a Tracker exclusively through Track().
type Tracker struct {
	instance *Instance
	source   Source
}

// Track loads buf as generation 0 and returns a ready-to-use Tracker.
func Track(buf []byte) *Tracker {
	src := LoadSource(buf)
	return &Tracker{
		instance: New(src),
		source:   src,
	}
}

// Record tells the Tracker that mutated is the result of running
// testlang.Mutate on the Tracker's current value, and returns the byte
// range that changed.
func (t *Tracker) Record(mutated []byte) Range {
	return t.instance.Update(mutated)
}

// Origin returns the most recent generation that rewrote the byte currently
// at offset, or 0 if that byte is unchanged from the original.
func (t *Tracker) Origin(offset int) int {
	return t.instance.history.originGeneration(offset)
}

// History returns every rewrite that has covered offset, oldest first.
func (t *Tracker) History(offset int) []Rewrite {
	return t.instance.history.forOffset(offset)
}

// Generation returns how many mutations have been recorded.
func (t *Tracker) Generation() int {
	return t.instance.Generation()
}

// Value returns the current (most recently recorded) buffer.
func (t *Tracker) Value() []byte {
	return t.instance.Value()
}

// Original returns the buffer the Tracker was created with.
func (t *Tracker) Original() []byte {
	return t.source.Content()
}
