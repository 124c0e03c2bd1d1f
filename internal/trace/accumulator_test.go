package trace_test

import (
	"testing"

	"github.com/keurnel/testlang/internal/trace"
)

func TestAccumulator_RecordsInInsertionOrder(t *testing.T) {
	a := trace.New()
	a.SetPhase("parse")
	a.Info(trace.At("INPUT", 0), "started")
	a.Error(trace.At("INPUT.length", 0), "short input")

	entries := a.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message() != "started" || entries[1].Message() != "short input" {
		t.Errorf("entries out of insertion order: %+v", entries)
	}
	if entries[1].Phase() != "parse" {
		t.Errorf("expected phase %q, got %q", "parse", entries[1].Phase())
	}
}

func TestAccumulator_HasErrors(t *testing.T) {
	a := trace.New()
	if a.HasErrors() {
		t.Fatalf("expected no errors on a fresh Accumulator")
	}
	a.Warn(trace.At("INPUT", 0), "suspicious size")
	if a.HasErrors() {
		t.Fatalf("a warning must not count as an error")
	}
	a.Error(trace.At("INPUT", 4), "boom")
	if !a.HasErrors() {
		t.Fatalf("expected HasErrors to be true after recording an error")
	}
}

func TestAccumulator_EntriesIsACopy(t *testing.T) {
	a := trace.New()
	a.Info(trace.At("INPUT", 0), "first")

	entries := a.Entries()
	entries[0] = trace.Entry{}

	if a.Entries()[0].Message() != "first" {
		t.Fatalf("mutating the slice returned by Entries() must not affect the Accumulator")
	}
}

func TestPosition_String(t *testing.T) {
	p := trace.At("INPUT.payload[2]", 17)
	if got, want := p.String(), "INPUT.payload[2]@17"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}
