package closure

import "github.com/pkg/errors"

// ErrInconsistentSequence is returned when two blocks disagree on the
// base observed at the same forward-strand offset of the same sequence,
// and the base recorded first is not the ambiguity code 'N'.
var ErrInconsistentSequence = errors.New("inconsistent sequence")

// Reservoir holds the forward-strand sequence of every thread touched by
// pass 1, keyed by the same name hash the pinch graph uses. Buffers are
// allocated lazily, one per thread, sized to the thread's declared
// sourceLength, and pre-filled with 'N' so unobserved positions read back
// as the ambiguity code rather than a zero byte.
type Reservoir struct {
	buffers map[uint64][]byte
}

// NewReservoir returns an empty Reservoir.
func NewReservoir() *Reservoir {
	return &Reservoir{buffers: map[uint64][]byte{}}
}

// ensure returns the buffer for nameHash, allocating and 'N'-filling it
// to length on first use.
func (r *Reservoir) ensure(nameHash uint64, length int64) []byte {
	buf, ok := r.buffers[nameHash]
	if !ok {
		buf = make([]byte, length)
		for i := range buf {
			buf[i] = 'N'
		}
		r.buffers[nameHash] = buf
	}
	return buf
}

// Set records base at nameHash's forward-strand offset, failing with
// ErrInconsistentSequence if a different, non-'N' base was already
// recorded there.
func (r *Reservoir) Set(nameHash uint64, offset int64, length int64, base byte) error {
	buf := r.ensure(nameHash, length)
	existing := buf[offset]
	if existing != 'N' && existing != base {
		return errors.Wrapf(ErrInconsistentSequence, "offset %d: have %q, got %q", offset, existing, base)
	}
	buf[offset] = base
	return nil
}

// Get returns the base recorded at nameHash's forward-strand offset, or
// 'N' if the thread was never seen.
func (r *Reservoir) Get(nameHash uint64, offset int64) byte {
	buf, ok := r.buffers[nameHash]
	if !ok {
		return 'N'
	}
	return buf[offset]
}

// Slice returns the forward-strand bases of nameHash over [start, end).
func (r *Reservoir) Slice(nameHash uint64, start, end int64) []byte {
	buf, ok := r.buffers[nameHash]
	if !ok {
		out := make([]byte, end-start)
		for i := range out {
			out[i] = 'N'
		}
		return out
	}
	return buf[start:end]
}
