// Package testlang implements the grammar-aware input engine shared by a
// coverage-guided fuzzer's generator, parser, and mutator: an immutable
// description of a binary input format ("testlang"), and the three
// operations that produce, decode, and rewrite byte strings against it.
package testlang

// RecordKind distinguishes the two ways a Record's Fields combine.
type RecordKind int

const (
	// Sequential records concatenate their fields in order.
	Sequential RecordKind = iota
	// Union records pick exactly one field as an alternative.
	Union
)

// FieldKind distinguishes what a Field contributes to its Record.
type FieldKind int

const (
	// Normal fields hold raw bytes of a declared or computed size.
	Normal FieldKind = iota
	// Array fields repeat another Record a declared or computed number
	// of times. The Field's Name also names that Record.
	Array
	// RecordField fields nest another Record once. The Field's Name also
	// names that Record.
	RecordField
)

// Field is a single named element inside a Record. Attributes is keyed by
// attribute name (e.g. "size", "value", "type", "array_size").
type Field struct {
	Name       string
	Kind       FieldKind
	Attributes map[string]Attribute
}

// Record is a named composite: either a Sequential concatenation of Fields
// or a Union of alternatives, each alternative named by one Field.
type Record struct {
	Name   string
	Kind   RecordKind
	Fields []Field
}

// Grammar is an ordered, immutable sequence of Records. The root record must
// be named INPUT; its absence is a hard error at generate/parse entry.
type Grammar struct {
	records []Record
}

// NewGrammar constructs a Grammar from an ordered slice of Records. The
// slice is copied; the returned Grammar never observes later mutation of
// the caller's slice. Duplicate record names are not rejected — behavior
// when more than one Record shares a name is implementation-defined: the
// first Record with that name wins in RecordsByName.
func NewGrammar(records []Record) Grammar {
	cp := make([]Record, len(records))
	copy(cp, records)
	return Grammar{records: cp}
}

// Records returns the Grammar's Records in declaration order. The returned
// slice is a copy; mutating it does not affect the Grammar.
func (g Grammar) Records() []Record {
	cp := make([]Record, len(g.records))
	copy(cp, g.records)
	return cp
}

// RecordsByName derives a lookup map from record name to Record. This is an
// O(n) derivation performed on every call; callers that need repeated
// lookups should cache the result themselves.
func (g Grammar) RecordsByName() map[string]Record {
	m := make(map[string]Record, len(g.records))
	for _, r := range g.records {
		if _, exists := m[r.Name]; !exists {
			m[r.Name] = r
		}
	}
	return m
}

// lookup resolves a record name against the Grammar, returning an
// UnknownRecordError naming the identifier that failed.
func (g Grammar) lookup(byName map[string]Record, name string) (Record, error) {
	r, ok := byName[name]
	if !ok {
		return Record{}, &UnknownRecordError{Name: name}
	}
	return r, nil
}

// IndependentFields returns the fields of r that the generator must produce
// in its primary pass: a field is dependent (excluded) when some OTHER
// field in r carries a "size" or "array_size" attribute that is a
// Reference to this field's name, or when this field itself carries a
// "value" attribute of kind Reference. The returned (index, Field) pairs
// preserve r's original field order and indices, since the generator fills
// a fixed-size output slot by position.
func IndependentFields(r Record) []IndexedField {
	dependent := make(map[string]bool, len(r.Fields))

	for _, f := range r.Fields {
		if ref, ok := referenceAttr(f, "size"); ok {
			dependent[ref] = true
		}
		if ref, ok := referenceAttr(f, "array_size"); ok {
			dependent[ref] = true
		}
		if ref, ok := referenceAttr(f, "value"); ok {
			// A field whose own "value" is a Reference is dependent on
			// itself: it cannot be produced independently.
			_ = ref
			dependent[f.Name] = true
		}
	}

	result := make([]IndexedField, 0, len(r.Fields))
	for i, f := range r.Fields {
		if !dependent[f.Name] {
			result = append(result, IndexedField{Index: i, Field: f})
		}
	}
	return result
}

// IndexedField pairs a Field with its original position in its Record's
// Fields slice.
type IndexedField struct {
	Index int
	Field Field
}

// referenceAttr returns the referenced name and true when field f carries
// attribute key with an Attribute of kind Reference.
func referenceAttr(f Field, key string) (string, bool) {
	attr, ok := f.Attributes[key]
	if !ok {
		return "", false
	}
	ref, ok := attr.(ReferenceAttr)
	if !ok {
		return "", false
	}
	return ref.Name, true
}

// fieldByName finds a field by name within a Record's Fields slice,
// returning its index as well since the generator's array_size back-link
// fills the corresponding output slot.
func fieldByName(fields []Field, name string) (int, Field, bool) {
	for i, f := range fields {
		if f.Name == name {
			return i, f, true
		}
	}
	return 0, Field{}, false
}
