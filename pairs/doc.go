// Package pairs implements exact homology-pair counting and the analytic
// column sampler: given a MAF file, count the exact number of aligned base
// pairs restricted to a "legitimate" sequence set, and draw a uniform
// sample of those pairs without ever materialising all of them for dense
// columns.
package pairs
