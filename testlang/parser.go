package testlang

import "math"

// unboundedCount is the sentinel used for an Array field with no "size"
// attribute: parse as many elements as the input and each element's own
// grammar will allow.
const unboundedCount = math.MaxInt

// Parse decodes b against Grammar g's root record, named INPUT, into a
// ParsedRecord. It fails with UnknownRecordError if INPUT is absent, and
// otherwise propagates whatever error the recursive descent in
// parseRecord produces (ShortInputError, ValueMismatchError,
// InvalidReferenceError, UnionNoMatchError, InvalidSizeError,
// UnknownFieldError).
func Parse(g Grammar, b []byte) (ParsedRecord, error) {
	byName := g.RecordsByName()
	root, err := g.lookup(byName, "INPUT")
	if err != nil {
		return ParsedRecord{}, err
	}
	pr, _, err := parseRecord(root, byName, b)
	return pr, err
}

// parseRecord decodes one record starting at the front of remaining,
// returning the ParsedRecord and the number of bytes it consumed. It
// implements the core spec's §4.C algorithm.
func parseRecord(record Record, byName map[string]Record, remaining []byte) (ParsedRecord, int, error) {
	if record.Kind == Union {
		for _, alt := range record.Fields {
			sub, err := lookupRecord(byName, alt.Name)
			if err != nil {
				return ParsedRecord{}, 0, err
			}
			// The trial parse is side-effect-free: parseRecord only ever
			// reads from remaining and returns fresh values, so a failed
			// alternative leaves no observable state behind.
			nested, n, err := parseRecord(sub, byName, remaining)
			if err != nil {
				continue
			}
			return ParsedRecord{
				Name: record.Name,
				Size: n,
				Fields: []NamedParsedField{
					{Name: nested.Name, Field: RecordParsedField{Name: nested.Name, Size: n, Nested: nested}},
				},
			}, n, nil
		}
		return ParsedRecord{}, 0, &UnionNoMatchError{Record: record.Name}
	}

	var fields []NamedParsedField
	i := 0

	for _, field := range record.Fields {
		switch field.Kind {
		case Normal:
			pf, consumed, err := parseNormalField(field, fields, remaining[i:])
			if err != nil {
				return ParsedRecord{}, 0, err
			}
			i += consumed
			fields = append(fields, NamedParsedField{Name: field.Name, Field: pf})

		case Array:
			count, err := resolveCount(field, fields)
			if err != nil {
				return ParsedRecord{}, 0, err
			}

			sub, err := lookupRecord(byName, field.Name)
			if err != nil {
				return ParsedRecord{}, 0, err
			}

			var elements []ParsedRecord
			total := 0
			for j := 0; j < count && i < len(remaining); j++ {
				elem, n, err := parseRecord(sub, byName, remaining[i:])
				if err != nil {
					break
				}
				elements = append(elements, elem)
				i += n
				total += n
			}

			fields = append(fields, NamedParsedField{
				Name:  field.Name,
				Field: ArrayParsedField{Name: field.Name, Size: total, Elements: elements},
			})

		case RecordField:
			sub, err := lookupRecord(byName, field.Name)
			if err != nil {
				return ParsedRecord{}, 0, err
			}
			nested, n, err := parseRecord(sub, byName, remaining[i:])
			if err != nil {
				return ParsedRecord{}, 0, err
			}
			i += n
			fields = append(fields, NamedParsedField{
				Name:  field.Name,
				Field: RecordParsedField{Name: field.Name, Size: n, Nested: nested},
			})
		}
	}

	return ParsedRecord{Name: record.Name, Size: i, Fields: fields}, i, nil
}

// parseNormalField decodes one Normal field from the front of remaining,
// resolving a "size" Reference against the sibling fields already parsed in
// this record, and validating a "value" attribute if present.
func parseNormalField(field Field, parsedSoFar []NamedParsedField, remaining []byte) (NormalField, int, error) {
	size, err := resolveSize(field, "size", parsedSoFar)
	if err != nil {
		return NormalField{}, 0, err
	}

	if size > len(remaining) {
		return NormalField{}, 0, &ShortInputError{Need: size, Have: len(remaining)}
	}

	value := make([]byte, size)
	copy(value, remaining[:size])

	if valueAttr, ok := field.Attributes["value"]; ok {
		expected, err := expectedValueBytes(valueAttr, size)
		if err != nil {
			return NormalField{}, 0, err
		}
		if !bytesEqual(value, expected) {
			return NormalField{}, 0, &ValueMismatchError{Field: field.Name}
		}
	}

	return NormalField{Name: field.Name, Size: size, Value: value}, size, nil
}

// resolveCount resolves an Array field's "size" attribute (its element
// count), returning unboundedCount when the attribute is absent.
func resolveCount(field Field, parsedSoFar []NamedParsedField) (int, error) {
	if _, ok := field.Attributes["size"]; !ok {
		return unboundedCount, nil
	}
	return resolveSize(field, "size", parsedSoFar)
}

// resolveSize resolves a size-shaped attribute (Number or Reference) to a
// concrete integer, looking up a Reference among the fields already parsed
// earlier in the same record.
func resolveSize(field Field, key string, parsedSoFar []NamedParsedField) (int, error) {
	attr, ok := field.Attributes[key]
	if !ok {
		return 0, &UnknownFieldError{Name: field.Name}
	}

	switch v := attr.(type) {
	case NumberAttr:
		return int(v.Value.Int64()), nil
	case WordAttr:
		return 0, &InvalidReferenceError{Name: field.Name, Reason: "size attribute cannot be a Word"}
	case ReferenceAttr:
		sibling, ok := findParsedNormal(parsedSoFar, v.Name)
		if !ok {
			return 0, &InvalidReferenceError{Name: v.Name, Reason: "referenced sibling is not an already-parsed Normal field"}
		}
		decoded, err := decodeNumber(sibling.Value, sibling.Size)
		if err != nil {
			return 0, err
		}
		return int(decoded.Int64()), nil
	}
	return 0, &InvalidReferenceError{Name: field.Name, Reason: "unsupported size attribute kind"}
}

// expectedValueBytes computes the bytes a "value" attribute should decode
// to, using the generator's encoding (§4.C step 4) with one difference: a
// Word longer than size is truncated to size here, while the generator
// emits it whole.
func expectedValueBytes(attr Attribute, size int) ([]byte, error) {
	switch v := attr.(type) {
	case NumberAttr:
		return encodeNumber(v.Value, size)
	case WordAttr:
		buf := []byte(v.Value)
		if len(buf) < size {
			padded := make([]byte, size)
			copy(padded, buf)
			return padded, nil
		}
		return buf[:size], nil
	case ReferenceAttr:
		return nil, &InvalidReferenceError{Name: v.Name, Reason: "value attribute cannot be a Reference during parse"}
	}
	return nil, &InvalidReferenceError{Reason: "unsupported value attribute kind"}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
