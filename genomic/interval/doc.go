// Package interval implements the interval-set data model used by the
// homology tester's bed-derived partitions (§3, §4.5 of the design): a
// sequence-name-keyed set of sorted, non-overlapping half-open [start, end)
// intervals, with a fast Contains query.
//
// The representation is adapted from the flattened-endpoint-array,
// sequential-query-cache design of a BED-union interval package:
// intervals for one sequence are stored as a single sorted
// []int64 with interval k's start in element 2k and end in element 2k+1,
// and repeated in-order queries against the same sequence reuse the index
// from the previous query instead of re-running binary search from
// scratch.
package interval
