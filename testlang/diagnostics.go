package testlang

import "github.com/keurnel/testlang/internal/trace"

// GenerateTraced behaves like Generate, additionally recording into acc an
// info entry at INPUT when generation starts, then either an info entry
// with the output length when it finishes or an error entry if it fails.
func GenerateTraced(g Grammar, r RNG, acc *trace.Accumulator) ([]byte, error) {
	acc.SetPhase("generate")
	acc.Info(trace.At("INPUT", 0), "generation started")

	out, err := Generate(g, r)
	if err != nil {
		acc.Error(trace.At("INPUT", 0), err.Error())
		return nil, err
	}

	acc.Info(trace.At("INPUT", len(out)), "generation finished")
	return out, nil
}

// ParseTraced behaves like Parse, recording one info entry per top-level
// field of the root record on success, or an error entry on failure.
func ParseTraced(g Grammar, b []byte, acc *trace.Accumulator) (ParsedRecord, error) {
	acc.SetPhase("parse")

	pr, err := Parse(g, b)
	if err != nil {
		acc.Error(trace.At("INPUT", 0), err.Error())
		return ParsedRecord{}, err
	}

	offset := 0
	for _, nf := range pr.Fields {
		acc.Info(trace.At("INPUT."+nf.Name, offset), "field parsed")
		offset += fieldSize(nf.Field)
	}
	return pr, nil
}

// MutateTraced behaves like Mutate, recording the outcome (mutated,
// skipped, or error) into acc.
func MutateTraced(g Grammar, r RNG, buf []byte, acc *trace.Accumulator) ([]byte, MutationResult, error) {
	acc.SetPhase("mutate")

	out, result, err := Mutate(g, r, buf)
	if err != nil {
		acc.Error(trace.At("INPUT", 0), err.Error())
		return nil, result, err
	}
	if result == Skipped {
		acc.Info(trace.At("INPUT", 0), "mutation skipped: empty input")
	} else {
		acc.Info(trace.At("INPUT", len(out)), "mutation applied")
	}
	return out, result, nil
}

func fieldSize(f ParsedField) int {
	switch v := f.(type) {
	case NormalField:
		return v.Size
	case RecordParsedField:
		return v.Size
	case ArrayParsedField:
		return v.Size
	}
	return 0
}
