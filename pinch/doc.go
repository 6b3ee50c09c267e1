// Package pinch implements a pinch graph: a set of threads, each a
// fixed-length linear interval partitioned into segments, where segments
// that have been declared equivalent by a Pinch operation belong to a
// common block. It is the data structure the transitive closure driver
// uses to merge aligned positions across an entire MAF file into
// reference-free blocks.
package pinch
