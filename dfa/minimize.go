package dfa

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/coregx/regexset/charclass"
)

// Minimize returns the minimal DFA equivalent to d via Hopcroft's
// partition-refinement algorithm (spec §4.6): states are refined from the
// coarse {accepting, non-accepting} split until no block can be split
// further by any symbol, then every state in a surviving block collapses to
// one minimized state. Unreachable states are dropped first, since they can
// never affect the partition and would otherwise survive as dead weight.
//
// The result is canonically ordered: state 0 is always the start state, and
// every other state is numbered in breadth-first discovery order from it,
// so two DFAs over the same alphabet recognizing the same language always
// minimize to byte-for-byte identical state tables (spec's equivalence-via-
// canonical-form decision procedure depends on this). The alphabet itself is
// kept as given: symbols are never merged, so equal languages built over
// different alphabets minimize to different tables.
func Minimize(d *DFA, cfg Config) (*DFA, error) {
	cfg = cfg.withDefaults()

	n := d.NumStates()
	numSyms := len(d.sigma)
	reach := reachableStates(d)

	rev := make([][][]StateID, numSyms)
	for c := 0; c < numSyms; c++ {
		rev[c] = make([][]StateID, n)
		for s := 0; s < n; s++ {
			if !reach[s] {
				continue
			}
			t := d.Step(StateID(s), c)
			rev[c][t] = append(rev[c][t], StateID(s))
		}
	}

	accepting := bitset.New(uint(n))
	nonAccepting := bitset.New(uint(n))
	for s := 0; s < n; s++ {
		if !reach[s] {
			continue
		}
		if d.accept[s] {
			accepting.Set(uint(s))
		} else {
			nonAccepting.Set(uint(s))
		}
	}

	var partition []*bitset.BitSet
	if accepting.Count() > 0 {
		partition = append(partition, accepting)
	}
	if nonAccepting.Count() > 0 {
		partition = append(partition, nonAccepting)
	}

	var worklist []*bitset.BitSet
	switch {
	case accepting.Count() > 0 && nonAccepting.Count() > 0:
		if accepting.Count() <= nonAccepting.Count() {
			worklist = append(worklist, accepting)
		} else {
			worklist = append(worklist, nonAccepting)
		}
	case len(partition) == 1:
		worklist = append(worklist, partition[0])
	}

	for len(worklist) > 0 {
		a := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for c := 0; c < numSyms; c++ {
			x := bitset.New(uint(n))
			for t, ok := a.NextSet(0); ok; t, ok = a.NextSet(t + 1) {
				for _, s := range rev[c][t] {
					x.Set(uint(s))
				}
			}
			if x.Count() == 0 {
				continue
			}

			next := make([]*bitset.BitSet, 0, len(partition)+1)
			for _, y := range partition {
				inter := y.Intersection(x)
				ic := inter.Count()
				if ic == 0 || ic == y.Count() {
					next = append(next, y)
					continue
				}
				diff := y.Difference(x)
				next = append(next, inter, diff)

				replaced := false
				for wi, w := range worklist {
					if w == y {
						worklist[wi] = inter
						worklist = append(worklist, diff)
						replaced = true
						break
					}
				}
				if !replaced {
					if ic <= y.Count()-ic {
						worklist = append(worklist, inter)
					} else {
						worklist = append(worklist, diff)
					}
				}
			}
			partition = next
		}
	}

	blockOf := make([]int, n)
	for bi, blk := range partition {
		for s, ok := blk.NextSet(0); ok; s, ok = blk.NextSet(s + 1) {
			blockOf[s] = bi
		}
	}

	startBlock := blockOf[d.Start()]
	newID := make([]int, len(partition))
	for i := range newID {
		newID[i] = -1
	}
	order := []int{startBlock}
	newID[startBlock] = 0
	for i := 0; i < len(order); i++ {
		blk := order[i]
		rep, _ := partition[blk].NextSet(0)
		for c := 0; c < numSyms; c++ {
			t := d.Step(StateID(rep), c)
			tb := blockOf[t]
			if newID[tb] == -1 {
				newID[tb] = len(order)
				order = append(order, tb)
			}
		}
	}

	numNew := len(order)
	table := make([]StateID, numNew*numSyms)
	accept := make([]bool, numNew)
	for newIdx, blk := range order {
		rep, _ := partition[blk].NextSet(0)
		accept[newIdx] = d.accept[rep]
		for c := 0; c < numSyms; c++ {
			t := d.Step(StateID(rep), c)
			table[newIdx*numSyms+c] = StateID(newID[blockOf[t]])
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debugf("minimization: %d states -> %d states", n, numNew)
	}

	sigma := append([]charclass.CharClass{}, d.sigma...)
	return New(sigma, table, accept, 0), nil
}
