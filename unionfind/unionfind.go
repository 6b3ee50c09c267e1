// Package unionfind implements a disjoint-set forest with path compression
// and union-by-rank, used as the subroutine behind the LCA matrix's Tarjan
// off-line algorithm.
//
// The forest is a pair of contiguous slices indexed by element, not a
// pointer-linked tree: the element count (a tree's node count) is known up
// front, so there is no need for the teacher's intrusive-list style here.
package unionfind

// Forest is a disjoint-set forest over the elements [0, N).
type Forest struct {
	parent []int32
	rank   []int32
}

// New returns a Forest of n singleton sets, one per element.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int32, n),
		rank:   make([]int32, n),
	}
	for i := range f.parent {
		f.parent[i] = int32(i)
	}
	return f
}

// Len returns the number of elements the forest was built over.
func (f *Forest) Len() int { return len(f.parent) }

// Grow extends the forest to cover n elements total, adding new singleton
// sets for any newly-covered indices. It is a no-op if n <= f.Len().
func (f *Forest) Grow(n int) {
	if n <= len(f.parent) {
		return
	}
	start := len(f.parent)
	f.parent = append(f.parent, make([]int32, n-start)...)
	f.rank = append(f.rank, make([]int32, n-start)...)
	for i := start; i < n; i++ {
		f.parent[i] = int32(i)
	}
}

// Find returns the root of x's set, compressing the path from x to the
// root as it goes.
func (f *Forest) Find(x int32) int32 {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		f.parent[x], x = root, f.parent[x]
	}
	return root
}

// Union merges the sets containing x and y and returns the resulting
// root. Ties in rank are broken by promoting y's root, matching the
// tie-break the LCA matrix construction (§4.9) relies on for determinism.
func (f *Forest) Union(x, y int32) int32 {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return rx
	}
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
		return ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
		return rx
	default:
		f.parent[rx] = ry
		f.rank[ry]++
		return ry
	}
}

// Same reports whether x and y are currently in the same set.
func (f *Forest) Same(x, y int32) bool {
	return f.Find(x) == f.Find(y)
}
