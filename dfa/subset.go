package dfa

import (
	"github.com/coregx/regexset/charclass"
	"github.com/coregx/regexset/internal/idset"
	"github.com/coregx/regexset/nfa"
	"github.com/coregx/regexset/rerrors"
)

// FromNFA builds a DFA recognizing the same language as n via subset
// construction (spec §4.4):
//
//  1. Build Σ as the coarsest disjoint partition of every CharClass labeling
//     an NFA transition, extended with one extra block covering every scalar
//     value no transition mentions — this is what keeps Σ total over the
//     full domain, which the boolean combinators and complement both need.
//  2. The start DFA state is the ε-closure of {n.Start()}.
//  3. For each unprocessed DFA state and each symbol, move along every
//     transition whose class contains that symbol, then close that set
//     under ε — discovering new DFA states as needed (BFS via worklist).
//  4. A DFA state accepts iff its NFA-state set contains a match state.
//
// DFA states are identified by the canonical key of their underlying
// NFA-state set (idset.Set.Key), so two worklist entries with the same
// members always collapse to one DFA state, including the dead state that
// naturally falls out of the empty set.
func FromNFA(n *nfa.NFA, cfg Config) (*DFA, error) {
	cfg = cfg.withDefaults()

	numStates := n.NumStates()

	var classes []charclass.CharClass
	var owners []nfa.StateID
	for i := 0; i < numStates; i++ {
		id := nfa.StateID(i)
		if n.State(id).Kind == nfa.StateChar {
			classes = append(classes, n.State(id).Class)
			owners = append(owners, id)
		}
	}

	sigma, membership := totalAlphabet(classes)
	symbolsOf := make(map[nfa.StateID][]int, len(owners))
	for i, id := range owners {
		symbolsOf[id] = membership[i]
	}

	closure := func(seed []nfa.StateID) *idset.Set {
		set := idset.New(numStates)
		stack := make([]nfa.StateID, 0, len(seed))
		for _, s := range seed {
			set.Add(uint32(s))
			stack = append(stack, s)
		}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			st := n.State(id)
			switch st.Kind {
			case nfa.StateEpsilon:
				if !set.Contains(uint32(st.Next)) {
					set.Add(uint32(st.Next))
					stack = append(stack, st.Next)
				}
			case nfa.StateSplit:
				for _, t := range [2]nfa.StateID{st.Left, st.Right} {
					if !set.Contains(uint32(t)) {
						set.Add(uint32(t))
						stack = append(stack, t)
					}
				}
			}
		}
		return set
	}

	var states []*idset.Set
	index := make(map[string]StateID)

	start := closure([]nfa.StateID{n.Start()})
	states = append(states, start)
	index[start.Key()] = 0

	var table []StateID
	var accept []bool

	for i := 0; i < len(states); i++ {
		if len(states) > cfg.MaxStates {
			return nil, &rerrors.ComplexityError{Stage: "subset-construction", Limit: cfg.MaxStates, Actual: len(states)}
		}

		cur := states[i]
		isAccept := false
		cur.Each(func(id uint32) {
			if n.IsMatch(nfa.StateID(id)) {
				isAccept = true
			}
		})
		accept = append(accept, isAccept)

		for sym := range sigma {
			var moved []nfa.StateID
			cur.Each(func(id uint32) {
				nid := nfa.StateID(id)
				for _, s := range symbolsOf[nid] {
					if s == sym {
						moved = append(moved, n.State(nid).Next)
						break
					}
				}
			})

			closed := closure(moved)
			key := closed.Key()
			target, ok := index[key]
			if !ok {
				target = StateID(len(states))
				index[key] = target
				states = append(states, closed)
			}
			table = append(table, target)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debugf("subset construction: %d nfa states -> %d dfa states, |Σ|=%d", numStates, len(states), len(sigma))
	}

	// Spec §4.4 step 4: minimize with Hopcroft's algorithm and renumber by
	// BFS, so every DFA this constructor returns is already canonical —
	// no unreachable state, no two Hopcroft-equivalent states, start at 0.
	return Minimize(New(sigma, table, accept, 0), cfg)
}

// totalAlphabet partitions classes into their coarsest disjoint refinement
// and, if the refinement does not already cover the full scalar domain,
// appends one more block for everything it misses. The extra block never
// has an owner (no NFA transition mentions it), so every DFA state routes it
// straight to the dead state — which is exactly the semantics "symbols
// outside this automaton's vocabulary never lead anywhere but rejection".
func totalAlphabet(classes []charclass.CharClass) ([]charclass.CharClass, [][]int) {
	part := charclass.PartitionAll(classes)

	covered := charclass.Empty()
	for _, c := range part.Classes {
		covered = covered.UnionWith(c)
	}
	rest := charclass.Any().Subtract(covered)
	if rest.IsEmpty() {
		return part.Classes, part.Membership
	}
	sigma := append(append([]charclass.CharClass{}, part.Classes...), rest)
	return sigma, part.Membership
}
