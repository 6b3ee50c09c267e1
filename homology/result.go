package homology

// SpeciesPair is an ordered pair of species names, the key under which
// per-pair results are aggregated.
type SpeciesPair struct {
	Species1, Species2 string
}

// Result is one sequence-pair's tally of sampled pairs tested and hit,
// optionally broken down by the four interval-mask partitions (both sides
// in interval, A only, B only, neither).
type Result struct {
	Total int64
	InAll int64

	TotalBoth, TotalA, TotalB, TotalNeither int64
	InBoth, InA, InB, InNeither             int64
}

// Add folds one classified sampled-pair outcome into r. hit reports
// whether the pair counted as a hit (§4.4); partition is one of
// PartitionBoth/PartitionA/PartitionB/PartitionNeither, as produced by
// classify.
func (r *Result) Add(hit bool, partition Partition) {
	r.Total++
	if hit {
		r.InAll++
	}
	switch partition {
	case PartitionBoth:
		r.TotalBoth++
		if hit {
			r.InBoth++
		}
	case PartitionA:
		r.TotalA++
		if hit {
			r.InA++
		}
	case PartitionB:
		r.TotalB++
		if hit {
			r.InB++
		}
	default:
		r.TotalNeither++
		if hit {
			r.InNeither++
		}
	}
}

// merge folds other's counters into r, used to build the Self and
// Aggregate roll-ups.
func (r *Result) merge(other *Result) {
	r.Total += other.Total
	r.InAll += other.InAll
	r.TotalBoth += other.TotalBoth
	r.TotalA += other.TotalA
	r.TotalB += other.TotalB
	r.TotalNeither += other.TotalNeither
	r.InBoth += other.InBoth
	r.InA += other.InA
	r.InB += other.InB
	r.InNeither += other.InNeither
}

// Partition classifies a sampled pair's interval-mask membership.
type Partition int

const (
	// PartitionNeither is the zero value so a Result built without an
	// interval set classifies every pair here, leaving the all-counters
	// as the only meaningful ones.
	PartitionNeither Partition = iota
	PartitionA
	PartitionB
	PartitionBoth
)

// ResultSet is the complete outcome of one direction of a comparison: a
// result per ordered species pair, a same-species roll-up, and a
// per-species roll-up over both sides of every pair.
type ResultSet struct {
	PairResults map[SpeciesPair]*Result
	Self        *Result
	Aggregate   map[string]*Result
}

// newResultSet returns an empty ResultSet ready for Add.
func newResultSet() *ResultSet {
	return &ResultSet{
		PairResults: make(map[SpeciesPair]*Result),
		Self:        &Result{},
		Aggregate:   make(map[string]*Result),
	}
}

// add folds one classified outcome for the species pair (sp1, sp2) into
// the result set: the pair's own Result, the Self roll-up if sp1==sp2,
// and the Aggregate roll-up for both sp1 and sp2.
func (rs *ResultSet) add(sp1, sp2 string, hit bool, partition Partition) {
	key := SpeciesPair{sp1, sp2}
	r, ok := rs.PairResults[key]
	if !ok {
		r = &Result{}
		rs.PairResults[key] = r
	}
	r.Add(hit, partition)

	if sp1 == sp2 {
		rs.Self.Add(hit, partition)
	}

	a1, ok := rs.Aggregate[sp1]
	if !ok {
		a1 = &Result{}
		rs.Aggregate[sp1] = a1
	}
	a1.Add(hit, partition)

	if sp2 != sp1 {
		a2, ok := rs.Aggregate[sp2]
		if !ok {
			a2 = &Result{}
			rs.Aggregate[sp2] = a2
		}
		a2.Add(hit, partition)
	}
}
