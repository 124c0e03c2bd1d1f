package testlang

import "fmt"

// UnknownRecordError reports a grammar lookup miss at the generate/parse
// entry point: the root record INPUT does not exist in the Grammar. Mutate
// also returns it if its chosen node cannot be located in the parsed tree.
type UnknownRecordError struct {
	Name string
}

func (e *UnknownRecordError) Error() string {
	return fmt.Sprintf("testlang: unknown record %q", e.Name)
}

// UnknownFieldError reports a name that could not be resolved from a field:
// an Array, Record or Union-alternative field naming a record absent from
// the Grammar, an array_size back-link naming a sibling that is absent or
// has no "size", a field lacking a required "size" attribute during parse,
// or a Union with no alternatives during generation.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("testlang: unknown field %q", e.Name)
}

// InvalidSizeError reports a size that is not one of {1, 2, 4, 8, 16} when
// encoding or decoding a numeric value, or a negative size.
type InvalidSizeError struct {
	Value int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("testlang: invalid size %d (must be one of 1, 2, 4, 8, 16)", e.Value)
}

// InvalidReferenceError reports a Reference attribute used where only
// Number/Word is permitted, or a referenced sibling that has not been
// parsed yet or is the wrong kind.
type InvalidReferenceError struct {
	Name   string
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("testlang: invalid reference to %q: %s", e.Name, e.Reason)
}

// ShortInputError reports that the parser demanded more bytes than were
// available in the remaining input.
type ShortInputError struct {
	Need int
	Have int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("testlang: short input: need %d bytes, have %d", e.Need, e.Have)
}

// ValueMismatchError reports that a Normal field with a fixed "value"
// attribute disagreed with the actual bytes at that offset.
type ValueMismatchError struct {
	Field string
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("testlang: value mismatch on field %q", e.Field)
}

// UnionNoMatchError reports that no alternative of a Union record parsed
// successfully at the current offset.
type UnionNoMatchError struct {
	Record string
}

func (e *UnionNoMatchError) Error() string {
	return fmt.Sprintf("testlang: no alternative of union %q matched", e.Record)
}
