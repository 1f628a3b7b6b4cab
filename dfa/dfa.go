// Package dfa implements the deterministic automaton at the center of the
// engine: subset construction from an NFA, Hopcroft minimization, product
// construction for the boolean combinators, the decision procedures built on
// top of it, and state elimination back to a regular expression.
//
// A DFA is complete (every state has exactly one outgoing transition per
// alphabet symbol, including an explicit sink for "no other transition
// applies") and its alphabet Σ is always a coarsest disjoint partition of the
// CharClasses that labeled the source NFA, so a single symbol index stands in
// for every scalar value that reaches the same transitions everywhere.
package dfa

import (
	"fmt"

	"github.com/coregx/regexset/charclass"
)

// StateID identifies a DFA state. Every construction path in this package
// (subset construction, minimization, product construction) assigns the
// start state index 0, so StateID(0) is always q0 for a DFA built here.
type StateID uint32

// DFA is a complete, deterministic automaton (Q, Σ, δ, q0, F).
type DFA struct {
	// sigma is the disjoint alphabet: transitions index into sigma by
	// position, not by the original CharClasses the source NFA used.
	sigma []charclass.CharClass

	// table is a flat, row-major transition table: table[state*len(sigma)+sym]
	// is the successor of (state, sym). Always total.
	table []StateID

	// accept[s] reports whether state s is accepting.
	accept []bool

	start StateID
}

// New builds a DFA from its raw components. Callers are subset construction,
// minimization, and product construction; all three already guarantee
// totality, so New does not re-validate it.
func New(sigma []charclass.CharClass, table []StateID, accept []bool, start StateID) *DFA {
	return &DFA{sigma: sigma, table: table, accept: accept, start: start}
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int { return len(d.accept) }

// Start returns q0.
func (d *DFA) Start() StateID { return d.start }

// Alphabet returns Σ, the disjoint symbol classes transitions are indexed by.
func (d *DFA) Alphabet() []charclass.CharClass { return d.sigma }

// IsAccepting reports whether s ∈ F.
func (d *DFA) IsAccepting(s StateID) bool { return d.accept[s] }

// Step returns δ(s, sym), the successor state for alphabet symbol index sym.
func (d *DFA) Step(s StateID, sym int) StateID {
	return d.table[int(s)*len(d.sigma)+sym]
}

// StepRune returns δ(s, r), resolving the rune to its alphabet symbol first.
// Σ is always built as a total partition of the valid scalar domain (see
// dfa.FromNFA), so sym is guaranteed to resolve for any non-surrogate rune;
// passing a surrogate half is a programmer error, not a recoverable one.
func (d *DFA) StepRune(s StateID, r rune) StateID {
	sym := d.SymbolOf(r)
	if sym < 0 {
		panic(fmt.Sprintf("dfa: rune %U is outside the automaton's scalar domain", r))
	}
	return d.Step(s, sym)
}

// SymbolOf returns the alphabet index containing r, or -1 if none does.
func (d *DFA) SymbolOf(r rune) int {
	for i, cls := range d.sigma {
		if cls.Contains(r) {
			return i
		}
	}
	return -1
}

// IsSink reports whether s is the unreachable-once-entered dead state: not
// accepting, and every transition stays at s.
func (d *DFA) IsSink(s StateID) bool {
	if d.accept[s] {
		return false
	}
	for sym := range d.sigma {
		if d.Step(s, sym) != s {
			return false
		}
	}
	return true
}

// EachAcceptingState calls f once per accepting state ID.
func (d *DFA) EachAcceptingState(f func(StateID)) {
	for s, acc := range d.accept {
		if acc {
			f(StateID(s))
		}
	}
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, symbols: %d, start: %d}", len(d.accept), len(d.sigma), d.start)
}

// reachableStates returns, for every state, whether it is reachable from
// the start state via some sequence of transitions. Minimization and
// emptiness-testing both need this: unreachable states can never affect
// either the language or the coarsest partition.
func reachableStates(d *DFA) []bool {
	seen := make([]bool, d.NumStates())
	stack := []StateID{d.start}
	seen[d.start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for sym := range d.sigma {
			t := d.Step(s, sym)
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	return seen
}
