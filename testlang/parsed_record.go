package testlang

// ParsedRecord is the structural tree produced by Parse and consumed by
// Mutate. Fields preserves declaration order; for a Union record it holds
// exactly one entry, wrapping whichever alternative matched.
type ParsedRecord struct {
	Name   string
	Size   int
	Fields []NamedParsedField
}

// NamedParsedField pairs a ParsedField with the Field.Name it satisfies.
type NamedParsedField struct {
	Name  string
	Field ParsedField
}

// ParsedField is one of NormalField, RecordParsedField, or ArrayParsedField. The
// interface is sealed to this package via the unexported parsedField()
// marker method.
type ParsedField interface {
	parsedField()
}

// NormalField is a decoded Normal field: exactly Size bytes, taken verbatim
// from the input (or, after a mutation, freshly generated).
type NormalField struct {
	Name  string
	Size  int
	Value []byte
}

func (NormalField) parsedField() {}

// RecordParsedField is a decoded nested Record field (or the single wrapper
// field of a parsed Union).
type RecordParsedField struct {
	Name   string
	Size   int
	Nested ParsedRecord
}

func (RecordParsedField) parsedField() {}

// ArrayParsedField is a decoded Array field: zero or more ParsedRecord
// elements.
type ArrayParsedField struct {
	Name     string
	Size     int
	Elements []ParsedRecord
}

func (ArrayParsedField) parsedField() {}

// Serialize concatenates the byte values of every NormalField reachable
// from p, in depth-first, declaration order. RecordParsedField and
// ArrayParsedField contribute nothing directly — only the NormalFields
// nested beneath them do. This is the "serialize" operation referenced by
// core spec property 2 and used internally by Mutate to rewrite bytes.
func (p ParsedRecord) Serialize() []byte {
	var out []byte
	appendSerialized(&out, p)
	return out
}

func appendSerialized(out *[]byte, p ParsedRecord) {
	for _, nf := range p.Fields {
		switch f := nf.Field.(type) {
		case NormalField:
			*out = append(*out, f.Value...)
		case RecordParsedField:
			appendSerialized(out, f.Nested)
		case ArrayParsedField:
			for _, elem := range f.Elements {
				appendSerialized(out, elem)
			}
		}
	}
}

// findParsedNormal looks up a sibling NormalField by name among already
// appended fields. Used to resolve in-record Reference attributes while
// parsing, mirroring the order-sensitive lookup the core spec requires
// (§4.C: "find the already-parsed sibling by name").
func findParsedNormal(fields []NamedParsedField, name string) (NormalField, bool) {
	for _, nf := range fields {
		if nf.Name == name {
			if normal, ok := nf.Field.(NormalField); ok {
				return normal, true
			}
			return NormalField{}, false
		}
	}
	return NormalField{}, false
}
