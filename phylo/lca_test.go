package phylo

import "testing"

// indexLeaves returns a map from leaf label to its PostOrder index, valid
// only after LCAMatrix (or postOrder) has labelled the tree.
func indexLeaves(root *Node) map[string]int32 {
	out := map[string]int32{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			out[n.Label] = n.PostOrder
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

func TestLCAMatrixDiagonalAndSymmetry(t *testing.T) {
	root, err := ParseNewick("((A,B),(C,D));")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	m := LCAMatrix(root)
	n := len(m)
	for i := 0; i < n; i++ {
		if m[i][i] != int32(i) {
			t.Errorf("m[%d][%d] = %d, want %d", i, i, m[i][i], i)
		}
		for j := 0; j < n; j++ {
			if m[i][j] != m[j][i] {
				t.Errorf("m[%d][%d] = %d != m[%d][%d] = %d", i, j, m[i][j], j, i, m[j][i])
			}
		}
	}
}

func TestLCAMatrixKnownAncestors(t *testing.T) {
	root, err := ParseNewick("((A,B),(C,D));")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	m := LCAMatrix(root)
	idx := indexLeaves(root)

	ab := m[idx["A"]][idx["B"]]
	cd := m[idx["C"]][idx["D"]]
	if ab == cd {
		t.Errorf("lca(A,B) and lca(C,D) should be distinct clade nodes, both got %d", ab)
	}
	ac := m[idx["A"]][idx["C"]]
	bc := m[idx["B"]][idx["C"]]
	if ac != bc {
		t.Errorf("lca(A,C) = %d, lca(B,C) = %d, want equal (both the root)", ac, bc)
	}
	if ac == ab {
		t.Errorf("lca(A,C) should be the root, shallower than lca(A,B) = %d, both got %d", ab, ac)
	}
}

// TestClassifyTrioSpeciesTree is scenario S6: tree ((A,B),(C,D)); with
// A=0,B=1,C=2,D=3 classifies (A,B,C) as ((A,B),C) and (A,C,D) as
// (A,(C,D)).
func TestClassifyTrioSpeciesTree(t *testing.T) {
	root, err := ParseNewick("((A,B),(C,D));")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	m := LCAMatrix(root)
	idx := indexLeaves(root)
	a, b, c, d := idx["A"], idx["B"], idx["C"], idx["D"]

	if got := ClassifyTrio(m, a, b, c); got != ABvC {
		t.Errorf("ClassifyTrio(A,B,C) = %v, want ABvC", got)
	}
	if got := ClassifyTrio(m, a, c, d); got != AvBC {
		t.Errorf("ClassifyTrio(A,C,D) = %v, want AvBC", got)
	}
}

func TestClassifyTrioMultifurcation(t *testing.T) {
	root, err := ParseNewick("(A,B,C);")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	m := LCAMatrix(root)
	idx := indexLeaves(root)
	got := ClassifyTrio(m, idx["A"], idx["B"], idx["C"])
	if got != Multifurcation {
		t.Errorf("ClassifyTrio on a polytomy = %v, want Multifurcation", got)
	}
}

func TestLCAMatrixDeepTreeDoesNotOverflow(t *testing.T) {
	// A long ladder of cherries: (((((L0,L1),L2),L3),L4)...). Exercises
	// the explicit-stack traversal against the kind of unbalanced tree
	// that would blow a naive recursive implementation's stack.
	newick := "L0"
	for i := 1; i < 5000; i++ {
		newick = "(" + newick + ",L" + itoaTest(i) + ")"
	}
	newick += ";"
	root, err := ParseNewick(newick)
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	m := LCAMatrix(root)
	// 5000 leaves plus 4999 internal nodes.
	if len(m) != 9999 {
		t.Fatalf("matrix size = %d, want 9999", len(m))
	}
}

func itoaTest(n int) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{byte('0' + n%10)}, buf...)
		n /= 10
	}
	return string(buf)
}
