package provenance_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/testlang/internal/provenance"
)

func TestTracker_OriginIsZeroBeforeAnyMutation(t *testing.T) {
	tr := provenance.Track([]byte("abcdef"))
	for i := 0; i < 6; i++ {
		if got := tr.Origin(i); got != 0 {
			t.Errorf("Origin(%d) = %d before any mutation, want 0", i, got)
		}
	}
}

func TestTracker_RecordsChangedRangeOnlyForSameLengthReplace(t *testing.T) {
	tr := provenance.Track([]byte("abcdef"))
	r := tr.Record([]byte("abXYef"))

	if r.Start != 2 || r.End != 4 {
		t.Fatalf("expected changed range [2,4), got %s", r)
	}
	if tr.Origin(1) != 0 {
		t.Errorf("byte 1 was untouched, expected origin generation 0")
	}
	if tr.Origin(2) != 1 {
		t.Errorf("byte 2 was rewritten in generation 1, got origin %d", tr.Origin(2))
	}
	if tr.Origin(4) != 0 {
		t.Errorf("byte 4 was untouched, expected origin generation 0")
	}
}

func TestTracker_RecordsGrowingReplacement(t *testing.T) {
	tr := provenance.Track([]byte("ab"))
	r := tr.Record([]byte("aXYZb"))

	if r.Start != 1 || r.End != 4 {
		t.Fatalf("expected changed range [1,4), got %s", r)
	}
	if tr.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", tr.Generation())
	}
}

func TestTracker_HistoryAccumulatesAcrossGenerations(t *testing.T) {
	tr := provenance.Track([]byte("aaaa"))
	tr.Record([]byte("abaa"))
	tr.Record([]byte("abca"))

	history := tr.History(2)
	if len(history) != 1 {
		t.Fatalf("expected exactly 1 rewrite touching offset 2, got %d: %v", len(history), history)
	}
	if history[0].Generation != 2 {
		t.Errorf("expected the single rewrite at offset 2 to be generation 2, got %d", history[0].Generation)
	}
}

func TestTracker_OriginalIsUnaffectedByRecord(t *testing.T) {
	original := []byte("hello")
	tr := provenance.Track(original)
	tr.Record([]byte("jello"))

	if !bytes.Equal(tr.Original(), []byte("hello")) {
		t.Fatalf("Original() changed after Record: %q", tr.Original())
	}
	if !bytes.Equal(tr.Value(), []byte("jello")) {
		t.Fatalf("Value() = %q, want %q", tr.Value(), "jello")
	}
}
