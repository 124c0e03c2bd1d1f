package testlang

const maxArraySize = 5

// Generate produces a well-formed byte string for Grammar g's root record,
// named INPUT, drawing randomness from r. It fails with UnknownRecordError
// if INPUT is absent, UnknownFieldError if a field references an undefined
// record, or InvalidSizeError if a numeric encoding width is not one of
// {1, 2, 4, 8, 16}.
func Generate(g Grammar, r RNG) ([]byte, error) {
	byName := g.RecordsByName()
	root, err := g.lookup(byName, "INPUT")
	if err != nil {
		return nil, err
	}
	return generateRecord(r, root, byName)
}

// generateRecord implements the core spec's §4.B algorithm. Union records
// pick one alternative uniformly and recurse, returning its bytes directly.
// Sequential records allocate one output slot per field, fill the
// independent fields in a first pass (writing dependent slots as a
// side-effect where a writer exists), and concatenate the slots in
// original field order.
func generateRecord(r RNG, record Record, byName map[string]Record) ([]byte, error) {
	if record.Kind == Union {
		if len(record.Fields) == 0 {
			// r.Below(0) is defined to return 0; indexing an empty slice
			// with it would still panic, so this case is reported as an
			// unknown-field condition instead of silently returning []byte{}.
			return nil, &UnknownFieldError{Name: record.Name}
		}
		i := r.Below(len(record.Fields))
		chosen := record.Fields[i]
		sub, err := lookupRecord(byName, chosen.Name)
		if err != nil {
			return nil, err
		}
		return generateRecord(r, sub, byName)
	}

	slots := make([][]byte, len(record.Fields))

	for _, indexed := range IndependentFields(record) {
		i, field := indexed.Index, indexed.Field

		switch field.Kind {
		case Normal:
			buf, err := generateNormalField(r, field)
			if err != nil {
				return nil, err
			}
			slots[i] = buf

		case Array:
			sub, err := lookupRecord(byName, field.Name)
			if err != nil {
				return nil, err
			}

			arraySize := r.Between(0, maxArraySize)

			if ref, ok := referenceAttr(field, "array_size"); ok {
				j, sizeField, found := fieldByName(record.Fields, ref)
				if !found {
					return nil, &UnknownFieldError{Name: ref}
				}
				sizeAttr, ok := sizeField.Attributes["size"]
				if !ok {
					return nil, &UnknownFieldError{Name: ref}
				}
				num, ok := sizeAttr.(NumberAttr)
				if !ok {
					return nil, &InvalidReferenceError{Name: ref, Reason: "array_size target's size is not a Number"}
				}
				encoded, err := encodeNumber(bigFromInt(arraySize), int(num.Value.Int64()))
				if err != nil {
					return nil, err
				}
				slots[j] = encoded
			}

			var collected []byte
			for k := 0; k < arraySize; k++ {
				elem, err := generateRecord(r, sub, byName)
				if err != nil {
					return nil, err
				}
				collected = append(collected, elem...)
			}
			slots[i] = collected

		case RecordField:
			sub, err := lookupRecord(byName, field.Name)
			if err != nil {
				return nil, err
			}
			bytes, err := generateRecord(r, sub, byName)
			if err != nil {
				return nil, err
			}
			slots[i] = bytes
		}
	}

	var out []byte
	for _, slot := range slots {
		out = append(out, slot...)
	}
	return out, nil
}

// generateNormalField implements the Normal-field branch of §4.B: a fixed
// "value" is encoded verbatim; otherwise a random size (if not declared) and
// a random prefix of random bytes (reserving one trailing zero byte for
// type == "string") are produced.
func generateNormalField(r RNG, field Field) ([]byte, error) {
	sizeAttr := field.Attributes["size"]

	if valueAttr, hasValue := field.Attributes["value"]; hasValue {
		if _, isRef := valueAttr.(ReferenceAttr); isRef {
			return nil, &InvalidReferenceError{Name: field.Name, Reason: "value attribute cannot be a Reference on an independent field"}
		}

		size := 0
		if num, ok := sizeAttr.(NumberAttr); ok {
			size = int(num.Value.Int64())
		}

		switch v := valueAttr.(type) {
		case NumberAttr:
			return encodeNumber(v.Value, size)
		case WordAttr:
			buf := []byte(v.Value)
			if len(buf) < size {
				padded := make([]byte, size)
				copy(padded, buf)
				return padded, nil
			}
			// Longer-than-size words are emitted unpadded and untruncated
			// (§9 "Word-value padding vs overflow": an acknowledged,
			// documented asymmetry with the parser's exact-size compare).
			return buf, nil
		}
		return nil, &InvalidReferenceError{Name: field.Name, Reason: "unsupported value attribute kind"}
	}

	isString := false
	if ty, ok := field.Attributes["type"].(WordAttr); ok && ty.Value == "string" {
		isString = true
	}

	// Only a literal Number "size" is honored here; an absent attribute or
	// one that is itself a Reference both fall back to a random length in
	// [0, 256) — the generator never resolves a Normal field's own "size"
	// Reference against a sibling (only Array's "array_size" back-link does
	// sibling resolution on the generate side).
	size := r.Below(256)
	if num, ok := sizeAttr.(NumberAttr); ok {
		size = int(num.Value.Int64())
	}

	buf := make([]byte, size)
	upperBound := size
	if isString && size > 0 {
		upperBound = size - 1
	}
	subSize := r.Between(0, upperBound)
	for i := 0; i < subSize; i++ {
		buf[i] = byte(r.Below(256))
	}
	return buf, nil
}

func lookupRecord(byName map[string]Record, name string) (Record, error) {
	r, ok := byName[name]
	if !ok {
		return Record{}, &UnknownFieldError{Name: name}
	}
	return r, nil
}
