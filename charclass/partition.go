package charclass

// Partition is the result of partitioning a collection of CharClasses into
// the coarsest disjoint refinement: Classes are pairwise disjoint and their
// union equals the union of the original inputs, and every original input
// is exactly the union of some subset of Classes. Membership records, for
// each original input (by index), which refined classes compose it.
type Partition struct {
	Classes    []CharClass
	Membership [][]int // Membership[i] = indices into Classes composing the i-th input
}

// Partitioner computes the coarsest disjoint refinement of a finite
// collection of CharClasses (spec §4.2). Algorithm: start with the first
// class as the sole block; for each subsequent class, split every existing
// block into (block∩next, block∖next) and append next∖(union of blocks so
// far). The result is independent of input order up to the blocks'
// content, but output order is kept stable by always appending new pieces
// at the end and finally sorting by lexicographic range order so repeated
// calls on equal input sets are bit-for-bit identical (the partitioner must
// be pure and deterministic).
type Partitioner struct {
	blocks []CharClass
}

// NewPartitioner creates an empty partitioner (the trivial partition of ∅).
func NewPartitioner() *Partitioner {
	return &Partitioner{}
}

// Add folds one more CharClass into the running partition and returns the
// index set (into the partitioner's current Blocks) that composes it.
func (p *Partitioner) Add(next CharClass) []int {
	if next.IsEmpty() {
		return nil
	}

	var refined []CharClass
	var covered CharClass
	for _, block := range p.blocks {
		inter := block.IntersectWith(next)
		diff := block.Subtract(next)
		if !inter.IsEmpty() {
			refined = append(refined, inter)
		}
		if !diff.IsEmpty() {
			refined = append(refined, diff)
		}
		covered = covered.UnionWith(block)
	}
	remainder := next.Subtract(covered)
	if !remainder.IsEmpty() {
		refined = append(refined, remainder)
	}
	p.blocks = sortClasses(refined)

	idx := make([]int, 0, len(p.blocks))
	for i, b := range p.blocks {
		if b.IsSubsetOf(next) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Blocks returns the partitioner's current disjoint blocks, in canonical
// (lexicographic-by-first-range) order.
func (p *Partitioner) Blocks() []CharClass {
	out := make([]CharClass, len(p.blocks))
	copy(out, p.blocks)
	return out
}

// PartitionAll computes the full Partition for a slice of CharClasses in one
// shot: the coarsest disjoint refinement plus, for each input, the set of
// refined block indices composing it. Ties are broken by the lexicographic
// order of ranges, so the output is canonical regardless of which repeated
// class values appear multiple times in classes.
func PartitionAll(classes []CharClass) Partition {
	p := NewPartitioner()
	// First pass: fold every class into the running partition, tracking
	// insertion order is irrelevant to the final block set (§4.2 is proven
	// order-independent up to content), but we still recompute membership
	// against the *final* block set below so output composition is exact
	// even though blocks were split further by later classes.
	for _, c := range classes {
		p.Add(c)
	}

	membership := make([][]int, len(classes))
	for i, c := range classes {
		for j, block := range p.blocks {
			if !block.IsEmpty() && block.IsSubsetOf(c) {
				membership[i] = append(membership[i], j)
			}
		}
	}

	return Partition{Classes: p.Blocks(), Membership: membership}
}

// sortClasses orders classes by the lexicographic order of their range
// lists, giving a canonical block ordering independent of fold order.
func sortClasses(cs []CharClass) []CharClass {
	out := make([]CharClass, len(cs))
	copy(out, cs)
	// insertion sort: partitions are small (bounded by alphabet size seen
	// in one automaton), and this keeps the comparison logic inline and
	// easy to follow.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessClass(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func lessClass(a, b CharClass) bool {
	ar, br := a.ranges, b.ranges
	for i := 0; i < len(ar) && i < len(br); i++ {
		if ar[i].Lo != br[i].Lo {
			return ar[i].Lo < br[i].Lo
		}
		if ar[i].Hi != br[i].Hi {
			return ar[i].Hi < br[i].Hi
		}
	}
	return len(ar) < len(br)
}
