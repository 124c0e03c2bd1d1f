// Package surface loads a Grammar from a textual YAML document. The core
// testlang package only knows about the in-memory Grammar/Record/Field
// model; surface is the concrete "how do I get one of these from a file"
// answer for command-line and test use.
package surface

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/keurnel/testlang/testlang"
)

// document is the raw YAML shape. Attributes are decoded into attrDoc and
// converted in attrDoc.toAttribute (called from fieldDoc.toField), since
// Attribute is a sealed interface and its concrete kind depends on which of
// the number/word/ref keys is present in the document.
type document struct {
	Records []recordDoc `yaml:"records"`
}

type recordDoc struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name       string              `yaml:"name"`
	Kind       string              `yaml:"kind"`
	Attributes map[string]attrDoc  `yaml:"attributes"`
}

// attrDoc decodes one of three shapes:
//
//	size: {number: 4}       # number
//	value: {word: "GET "}   # word
//	array_size: {ref: len}  # reference
type attrDoc struct {
	Number    *int64  `yaml:"number"`
	Word      *string `yaml:"word"`
	Reference *string `yaml:"ref"`
}

func (a attrDoc) toAttribute(owner, key string) (testlang.Attribute, error) {
	switch {
	case a.Number != nil:
		return testlang.Number(*a.Number), nil
	case a.Word != nil:
		return testlang.Word(*a.Word), nil
	case a.Reference != nil:
		return testlang.Reference(*a.Reference), nil
	default:
		return nil, fmt.Errorf("surface: field %q attribute %q has none of number/word/ref set", owner, key)
	}
}

func (f fieldDoc) toField() (testlang.Field, error) {
	kind, err := parseFieldKind(f.Kind)
	if err != nil {
		return testlang.Field{}, fmt.Errorf("surface: field %q: %w", f.Name, err)
	}

	attrs := make(map[string]testlang.Attribute, len(f.Attributes))
	for key, raw := range f.Attributes {
		attr, err := raw.toAttribute(f.Name, key)
		if err != nil {
			return testlang.Field{}, err
		}
		attrs[key] = attr
	}

	return testlang.Field{Name: f.Name, Kind: kind, Attributes: attrs}, nil
}

func parseFieldKind(s string) (testlang.FieldKind, error) {
	switch s {
	case "", "normal":
		return testlang.Normal, nil
	case "array":
		return testlang.Array, nil
	case "record":
		return testlang.RecordField, nil
	default:
		return 0, fmt.Errorf("unknown field kind %q", s)
	}
}

func parseRecordKind(s string) (testlang.RecordKind, error) {
	switch s {
	case "", "sequential":
		return testlang.Sequential, nil
	case "union":
		return testlang.Union, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", s)
	}
}

// Load decodes a YAML grammar document from r into a testlang.Grammar.
//
// Example document:
//
//	records:
//	  - name: INPUT
//	    kind: sequential
//	    fields:
//	      - name: length
//	        attributes:
//	          size: {number: 2}
//	      - name: payload
//	        kind: array
//	        attributes:
//	          array_size: {ref: length}
func Load(r io.Reader) (testlang.Grammar, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return testlang.Grammar{}, fmt.Errorf("surface: decoding grammar: %w", err)
	}

	records := make([]testlang.Record, 0, len(doc.Records))
	for _, rd := range doc.Records {
		kind, err := parseRecordKind(rd.Kind)
		if err != nil {
			return testlang.Grammar{}, fmt.Errorf("surface: record %q: %w", rd.Name, err)
		}

		fields := make([]testlang.Field, 0, len(rd.Fields))
		for _, fd := range rd.Fields {
			field, err := fd.toField()
			if err != nil {
				return testlang.Grammar{}, fmt.Errorf("surface: record %q: %w", rd.Name, err)
			}
			fields = append(fields, field)
		}

		records = append(records, testlang.Record{Name: rd.Name, Kind: kind, Fields: fields})
	}

	return testlang.NewGrammar(records), nil
}
