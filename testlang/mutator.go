package testlang

// MutationResult reports what Mutate did.
type MutationResult int

const (
	// Mutated means a sub-record was regenerated and the returned slice
	// holds the new bytes, possibly of a different length than buf.
	Mutated MutationResult = iota
	// Skipped means the input was empty; Mutate performs no work.
	Skipped
)

// Mutate parses buf against g, picks one ParsedRecord node uniformly over
// (depth, index-within-depth), regenerates it from scratch using r, and
// returns the re-serialized bytes of the whole tree.
//
// Unlike the original implementation this is modeled on, Mutate does not
// write back into a caller-supplied fixed-length buffer (core spec §4.D's
// "critical caveat"): the regenerated sub-record's length almost never
// matches the original, so the contract here is widened to return a freshly
// sized byte slice — the recommended resolution in §9 — and the caller
// replaces its input wholesale.
func Mutate(g Grammar, r RNG, buf []byte) ([]byte, MutationResult, error) {
	if len(buf) == 0 {
		return nil, Skipped, nil
	}

	parsed, err := Parse(g, buf)
	if err != nil {
		return nil, Skipped, err
	}

	heights := heightMap(parsed)
	depth := r.Below(len(heights))
	index := r.Below(heights[depth])

	byName := g.RecordsByName()
	if err := regenerateAt(&parsed, depth, index, r, byName); err != nil {
		return nil, Skipped, err
	}

	return parsed.Serialize(), Mutated, nil
}

// heightMap returns, for each depth starting at 0 (the root), the number of
// ParsedRecord nodes at that depth. A DFS enters RecordParsedField and each
// ArrayParsedField element but does not descend into NormalField leaves.
func heightMap(p ParsedRecord) []int {
	var result []int
	walkHeights(&result, p, 0)
	return result
}

func walkHeights(result *[]int, node ParsedRecord, depth int) {
	for len(*result) <= depth {
		*result = append(*result, 0)
	}
	(*result)[depth]++

	for _, nf := range node.Fields {
		switch f := nf.Field.(type) {
		case RecordParsedField:
			walkHeights(result, f.Nested, depth+1)
		case ArrayParsedField:
			for _, elem := range f.Elements {
				walkHeights(result, elem, depth+1)
			}
		}
	}
}

// regenerateAt locates the index-th ParsedRecord at depth in the same DFS
// order heightMap walked, and replaces its contents with a single synthetic
// NormalField holding freshly generated bytes for the same record name.
//
// findPath runs a read-only traversal to locate the target by a sequence of
// field/element indices rather than returning a pointer into it directly:
// a type switch on node.Fields[i].Field copies the concrete ParsedField
// value out of the interface (RecordParsedField.Nested is a ParsedRecord by
// value, not a pointer), so a pointer taken into that copy's Nested field
// is disconnected from the real tree. applyAt walks the same path with real
// pointers and writes each level's mutated copy back into its parent's
// Fields slice on the way up, after the target has actually been mutated.
func regenerateAt(node *ParsedRecord, depth, index int, r RNG, byName map[string]Record) error {
	cursor := index
	path, ok := findPath(*node, depth, &cursor)
	if !ok {
		return &UnknownRecordError{Name: node.Name}
	}

	return applyAt(node, path, func(target *ParsedRecord) error {
		record, err := lookupRecord(byName, target.Name)
		if err != nil {
			return err
		}

		fresh, err := generateRecord(r, record, byName)
		if err != nil {
			return err
		}

		target.Size = len(fresh)
		target.Fields = []NamedParsedField{
			{
				Name: target.Name,
				Field: NormalField{
					Name:  target.Name,
					Size:  len(fresh),
					Value: fresh,
				},
			},
		}
		return nil
	})
}

// pathStep names one hop of a DFS descent: either into a RecordParsedField's
// Nested (elemIndex -1) or into the elemIndex-th element of an
// ArrayParsedField.
type pathStep struct {
	fieldIndex int
	elemIndex  int
}

// findPath performs the same DFS traversal as walkHeights, decrementing
// *index each time a node at depth 0 is visited, and returning the sequence
// of steps from node down to the one where *index reaches 0. It mirrors the
// original implementation's find_record traversal order exactly, including
// reusing depth as a decrementing cursor across the recursive calls, but
// never writes through node: the tree is read-only during the search.
func findPath(node ParsedRecord, depth int, index *int) ([]pathStep, bool) {
	if depth == 0 {
		if *index == 0 {
			return []pathStep{}, true
		}
		*index--
	}

	for i, nf := range node.Fields {
		switch f := nf.Field.(type) {
		case RecordParsedField:
			if depth > 0 {
				if sub, ok := findPath(f.Nested, depth-1, index); ok {
					return append([]pathStep{{fieldIndex: i, elemIndex: -1}}, sub...), true
				}
			}
		case ArrayParsedField:
			if depth > 0 {
				for j, elem := range f.Elements {
					if sub, ok := findPath(elem, depth-1, index); ok {
						return append([]pathStep{{fieldIndex: i, elemIndex: j}}, sub...), true
					}
				}
			}
		}
	}

	return nil, false
}

// applyAt walks path from node, applying mutate to the ParsedRecord the
// path names, then splices each level's updated copy back into its
// parent's Fields slice while unwinding — so the mutation performed on the
// deepest pointer is visible in the value copied back at every level above
// it, all the way to node.
func applyAt(node *ParsedRecord, path []pathStep, mutate func(*ParsedRecord) error) error {
	if len(path) == 0 {
		return mutate(node)
	}

	step := path[0]
	switch f := node.Fields[step.fieldIndex].Field.(type) {
	case RecordParsedField:
		if err := applyAt(&f.Nested, path[1:], mutate); err != nil {
			return err
		}
		node.Fields[step.fieldIndex].Field = f
		return nil
	case ArrayParsedField:
		if err := applyAt(&f.Elements[step.elemIndex], path[1:], mutate); err != nil {
			return err
		}
		node.Fields[step.fieldIndex].Field = f
		return nil
	default:
		return &UnknownRecordError{Name: node.Name}
	}
}
