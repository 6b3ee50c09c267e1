package closure

import (
	"testing"

	"github.com/pkg/errors"
)

func TestReservoirSetAndGet(t *testing.T) {
	r := NewReservoir()
	if err := r.Set(1, 2, 5, 'A'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := r.Get(1, 2); got != 'A' {
		t.Errorf("Get(1,2) = %q, want 'A'", got)
	}
	if got := r.Get(1, 0); got != 'N' {
		t.Errorf("Get(1,0) (unobserved) = %q, want 'N'", got)
	}
	if got := r.Get(2, 0); got != 'N' {
		t.Errorf("Get of unknown thread = %q, want 'N'", got)
	}
}

func TestReservoirConflictFailsUnlessExistingIsN(t *testing.T) {
	r := NewReservoir()
	if err := r.Set(1, 0, 3, 'N'); err != nil {
		t.Fatalf("Set N: %v", err)
	}
	if err := r.Set(1, 0, 3, 'A'); err != nil {
		t.Fatalf("overwriting N with A should succeed: %v", err)
	}
	if err := r.Set(1, 0, 3, 'T'); errors.Cause(err) != ErrInconsistentSequence {
		t.Fatalf("conflicting non-N write: got %v, want ErrInconsistentSequence", err)
	}
	if err := r.Set(1, 0, 3, 'A'); err != nil {
		t.Errorf("repeating the same base should succeed: %v", err)
	}
}

func TestReservoirSlice(t *testing.T) {
	r := NewReservoir()
	_ = r.Set(1, 0, 4, 'A')
	_ = r.Set(1, 1, 4, 'C')
	_ = r.Set(1, 2, 4, 'G')
	got := string(r.Slice(1, 0, 3))
	if got != "ACG" {
		t.Errorf("Slice = %q, want ACG", got)
	}
}
