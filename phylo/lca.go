package phylo

import "github.com/grailbio/maf/unionfind"

// postOrder assigns each node in root's subtree a PostOrder index and
// returns the nodes in that order (children before parents, left to
// right). It walks with an explicit stack rather than recursion: deep,
// unbalanced trees (a long ladder of single-taxon outgroups is common in
// real species trees) can otherwise blow the goroutine stack, the same
// lcaP overflow risk noted against the recursive formulation.
func postOrder(root *Node) []*Node {
	type frame struct {
		node      *Node
		childIdx  int
	}
	var order []*Node
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.childIdx < len(top.node.Children) {
			child := top.node.Children[top.childIdx]
			top.childIdx++
			stack = append(stack, frame{node: child})
			continue
		}
		top.node.PostOrder = int32(len(order))
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// LCAMatrix labels every node of root's subtree in post order and returns
// the n x n matrix of pairwise lowest common ancestors, indexed by
// PostOrder label, where n is the subtree's node count. matrix[i][j] is
// the PostOrder label of the lowest common ancestor of the nodes labelled
// i and j; matrix[i][i] == i.
//
// This is Tarjan's off-line LCA algorithm: nodes are visited in post
// order, each is unioned into its parent's set as it finishes, and an
// "ancestor" array tracks which original node currently represents each
// union-find set. When a node u finishes, lca[u][v] for every
// already-finished v is ancestor[find(v)]. The traversal itself uses an
// explicit stack for the same overflow reason as postOrder.
func LCAMatrix(root *Node) [][]int32 {
	order := postOrder(root)
	n := len(order)

	uf := unionfind.New(n)
	ancestor := make([]int32, n)
	for i := range ancestor {
		ancestor[i] = int32(i)
	}
	finished := make([]bool, n)
	lca := make([][]int32, n)
	for i := range lca {
		lca[i] = make([]int32, n)
	}

	type frame struct {
		node     *Node
		childIdx int
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.childIdx < len(top.node.Children) {
			child := top.node.Children[top.childIdx]
			top.childIdx++
			stack = append(stack, frame{node: child})
			continue
		}
		u := top.node.PostOrder
		ancestor[uf.Find(u)] = u
		for _, child := range top.node.Children {
			root2 := uf.Union(u, child.PostOrder)
			ancestor[root2] = u
		}
		finished[u] = true
		for v := int32(0); v < int32(n); v++ {
			if v == u || !finished[v] {
				continue
			}
			l := ancestor[uf.Find(v)]
			lca[u][v] = l
			lca[v][u] = l
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node.PostOrder
			ancestor[uf.Union(parent, u)] = parent
		}
	}
	for i := range lca {
		lca[i][i] = int32(i)
	}
	return lca
}
