// Package closure computes the transitive closure of the homology
// relation a MAF file expresses: every pair of aligned bases is merged
// into a pinch-graph block, and the result is re-emitted as a single MAF
// whose blocks are exactly the graph's connected components.
package closure
