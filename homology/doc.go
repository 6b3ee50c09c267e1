// Package homology tests a sampled set of homology pairs drawn from one MAF
// file against the alignment columns of a second MAF file, and aggregates
// the hit/miss outcome into per-species-pair results, optional interval-mask
// partitions, and an XML report.
package homology
