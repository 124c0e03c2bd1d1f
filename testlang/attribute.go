package testlang

import "math/big"

// Attribute is a tagged-variant value attached to a Field under some
// attribute key (e.g. "size", "value", "type"). There are exactly three
// alternatives: NumberAttr, WordAttr, and ReferenceAttr. The interface is
// sealed to this package via the unexported attribute() marker method.
type Attribute interface {
	attribute()
}

// NumberAttr is a signed integer attribute value. Value is at least 128
// bits wide (math/big.Int, rather than a fixed machine width) because the
// data model requires that range for the largest supported encoding width.
// Callers must never mutate Value in place — Grammars are immutable once
// constructed; always build a fresh *big.Int when producing a new one.
type NumberAttr struct {
	Value *big.Int
}

func (NumberAttr) attribute() {}

// WordAttr is a byte-string attribute value.
type WordAttr struct {
	Value string
}

func (WordAttr) attribute() {}

// ReferenceAttr names a sibling field within the same Record, used for
// size/array-length back-links.
type ReferenceAttr struct {
	Name string
}

func (ReferenceAttr) attribute() {}

// Number constructs a NumberAttr from an int64.
func Number(v int64) NumberAttr {
	return NumberAttr{Value: big.NewInt(v)}
}

// NumberFromBigInt constructs a NumberAttr from an arbitrary *big.Int. The
// value is copied; later mutation of v does not affect the returned Attribute.
func NumberFromBigInt(v *big.Int) NumberAttr {
	return NumberAttr{Value: new(big.Int).Set(v)}
}

// Word constructs a WordAttr.
func Word(s string) WordAttr {
	return WordAttr{Value: s}
}

// Reference constructs a ReferenceAttr naming a sibling field.
func Reference(name string) ReferenceAttr {
	return ReferenceAttr{Name: name}
}
