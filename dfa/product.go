package dfa

import (
	"github.com/coregx/regexset/charclass"
	"github.com/coregx/regexset/rerrors"
)

// Combinator decides a product state's accept bit from the two operand
// accept bits it was built from.
type Combinator func(a, b bool) bool

// Product builds the synchronized product of a and b over a common
// alphabet — the coarsest disjoint refinement of both operands' alphabets —
// with accept(p,q) = combine(a.accept(p), b.accept(q)) (spec §4.5). Every
// boolean combinator (Union, Intersection, Difference, SymmetricDifference)
// reduces to one Product call with a different Combinator.
//
// Both a and b must already be total over the full scalar domain, which
// every DFA produced by this package's constructors guarantees.
func Product(a, b *DFA, combine Combinator, cfg Config) (*DFA, error) {
	cfg = cfg.withDefaults()

	sigma, aMap, bMap := commonAlphabet(a, b)

	type pair struct{ x, y StateID }
	index := make(map[pair]StateID)
	states := []pair{{a.Start(), b.Start()}}
	index[states[0]] = 0

	var table []StateID
	var accept []bool

	for i := 0; i < len(states); i++ {
		if len(states) > cfg.MaxStates {
			return nil, &rerrors.ComplexityError{Stage: "product", Limit: cfg.MaxStates, Actual: len(states)}
		}

		cur := states[i]
		accept = append(accept, combine(a.IsAccepting(cur.x), b.IsAccepting(cur.y)))

		for sym := range sigma {
			nx := a.Step(cur.x, aMap[sym])
			ny := b.Step(cur.y, bMap[sym])
			np := pair{nx, ny}
			target, ok := index[np]
			if !ok {
				target = StateID(len(states))
				index[np] = target
				states = append(states, np)
			}
			table = append(table, target)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debugf("product construction: %d x %d -> %d states, |Σ|=%d", a.NumStates(), b.NumStates(), len(states), len(sigma))
	}

	// Spec §4.5 step 4: minimize the product and canonicalize before
	// returning it, so chained folds (e.g. repeated Union in term.combine)
	// never carry forward redundant states from one Product into the next.
	return Minimize(New(sigma, table, accept, 0), cfg)
}

// commonAlphabet partitions the union of a's and b's alphabet classes into
// their coarsest disjoint refinement and, for every resulting symbol,
// returns the index of the original a-symbol and b-symbol it is a subset
// of. Because both alphabets are already total over the full scalar domain,
// every refined symbol is guaranteed to map to exactly one symbol in each.
func commonAlphabet(a, b *DFA) (sigma []charclass.CharClass, aMap, bMap []int) {
	classes := make([]charclass.CharClass, 0, len(a.sigma)+len(b.sigma))
	classes = append(classes, a.sigma...)
	classes = append(classes, b.sigma...)

	part := charclass.PartitionAll(classes)
	sigma = part.Classes

	aMap = make([]int, len(sigma))
	bMap = make([]int, len(sigma))
	for orig, members := range part.Membership {
		for _, sym := range members {
			if orig < len(a.sigma) {
				aMap[sym] = orig
			} else {
				bMap[sym] = orig - len(a.sigma)
			}
		}
	}
	return sigma, aMap, bMap
}
