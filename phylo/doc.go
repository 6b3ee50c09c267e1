// Package phylo parses Newick trees and classifies the topology of
// three-leaf subtrees (trios) using a lowest-common-ancestor matrix built
// with Tarjan's off-line LCA algorithm over a union-find forest.
package phylo
