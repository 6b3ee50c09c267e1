package pinch

import "blainsmith.com/go/seahash"

// NameHash returns the 64-bit name hash a thread is keyed by, the same
// hash the teacher uses to shard records by name (bamprovider's
// concurrentMap).
func NameHash(name string) uint64 {
	return seahash.Sum64([]byte(name))
}
