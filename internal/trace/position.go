package trace

import "fmt"

// Position identifies where in a Grammar's record tree an event happened:
// the dotted path of record/field names from the root, and the byte offset
// into the input at which that record or field began. It is a value type —
// safe to copy and compare.
type Position struct {
	path   string // e.g. "INPUT.payload[2].header"
	offset int    // byte offset from the start of the input
}

// At creates a Position from a path and a byte offset.
func At(path string, offset int) Position {
	return Position{path: path, offset: offset}
}

// Path returns the dotted record/field path.
func (p Position) Path() string { return p.path }

// Offset returns the byte offset into the input.
func (p Position) Offset() int { return p.offset }

// String returns "path@offset".
func (p Position) String() string {
	return fmt.Sprintf("%s@%d", p.path, p.offset)
}
