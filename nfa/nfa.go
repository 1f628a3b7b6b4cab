// Package nfa implements the transient nondeterministic automaton produced
// by regex compilation: a Thompson construction over regexp/syntax's parsed
// AST, with transitions labeled by CharClass or ε. An NFA is built once by
// the Compiler and consumed once by subset construction (package dfa); it is
// never matched against directly.
package nfa

import (
	"fmt"

	"github.com/coregx/regexset/charclass"
)

// StateID uniquely identifies an NFA state within one NFA. IDs are drawn
// from a monotonically increasing counter scoped to a single NFA and are
// never reused, so fragments compiled independently can be combined by
// concatenating state vectors and rewriting entry/exit IDs — no shared
// mutable map is needed during construction.
type StateID uint32

// InvalidState marks an unset or not-yet-patched state reference.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the shape of an NFA state's transitions.
type StateKind uint8

const (
	// StateMatch is an accepting state with no outgoing transitions.
	StateMatch StateKind = iota
	// StateChar transitions to Next on any scalar in Class.
	StateChar
	// StateSplit has two ε-transitions, Left and Right (alternation,
	// quantifiers).
	StateSplit
	// StateEpsilon has a single ε-transition to Next (sequencing).
	StateEpsilon
)

func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateChar:
		return "Char"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single NFA state. Which fields are meaningful depends on Kind.
type State struct {
	Kind  StateKind
	Class charclass.CharClass // StateChar
	Next  StateID              // StateChar, StateEpsilon
	Left  StateID              // StateSplit
	Right StateID              // StateSplit
}

// NFA is a tuple (Q, q0, F, δ): Q is implicit (len(states)), q0 is Start,
// F is exactly the set of StateMatch states reachable via transitions, and
// δ is encoded directly in each State.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the NFA's unique entry state.
func (n *NFA) Start() StateID { return n.start }

// NumStates returns |Q|.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns the state with the given ID. Panics if id is out of range;
// callers only ever hold IDs handed back by this same NFA.
func (n *NFA) State(id StateID) *State { return &n.states[id] }

// IsMatch reports whether id names an accepting state.
func (n *NFA) IsMatch(id StateID) bool { return n.states[id].Kind == StateMatch }

// EachCharClass calls f once for every StateChar state, passing the
// CharClass labeling its transition. Classes are not deduplicated: a class
// labeling several states is passed once per state.
func (n *NFA) EachCharClass(f func(charclass.CharClass)) {
	for i := range n.states {
		if n.states[i].Kind == StateChar {
			f(n.states[i].Class)
		}
	}
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}
