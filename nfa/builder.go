package nfa

import (
	"fmt"

	"github.com/coregx/regexset/charclass"
	"github.com/coregx/regexset/rerrors"
)

// Builder constructs an NFA incrementally. A fragment has a unique entry
// state and an unpatched exit that Patch/PatchSplit later wires to the next
// fragment, which is what lets Thompson construction compose fragments
// without a shared mutable map of labels.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16), start: InvalidState}
}

// AddMatch adds an accepting state and returns its ID.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: StateMatch})
	return id
}

// AddChar adds a state that transitions to next on any scalar in cls.
func (b *Builder) AddChar(cls charclass.CharClass, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: StateChar, Class: cls, Next: next})
	return id
}

// AddSplit adds a state with two ε-transitions (alternation, quantifiers).
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: StateSplit, Left: left, Right: right})
	return id
}

// AddEpsilon adds a state with a single ε-transition.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: StateEpsilon, Next: next})
	return id
}

// Patch rewires a StateChar or StateEpsilon state's Next target.
// Used to connect a fragment's dangling exit once the following fragment's
// entry is known.
func (b *Builder) Patch(id, target StateID) error {
	if int(id) >= len(b.states) {
		return &rerrors.InternalInvariantViolation{Invariant: "nfa-builder", Detail: "state id out of bounds"}
	}
	s := &b.states[id]
	switch s.Kind {
	case StateChar, StateEpsilon:
		s.Next = target
		return nil
	default:
		return fmt.Errorf("cannot patch state of kind %s", s.Kind)
	}
}

// PatchSplit rewires a StateSplit's two targets.
func (b *Builder) PatchSplit(id StateID, left, right StateID) error {
	if int(id) >= len(b.states) {
		return &rerrors.InternalInvariantViolation{Invariant: "nfa-builder", Detail: "state id out of bounds"}
	}
	s := &b.states[id]
	if s.Kind != StateSplit {
		return fmt.Errorf("expected Split state, got %s", s.Kind)
	}
	s.Left, s.Right = left, right
	return nil
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int { return len(b.states) }

// SetStart sets the NFA's single entry state.
func (b *Builder) SetStart(start StateID) { b.start = start }

// Build finalizes the NFA. Returns an InternalInvariantViolation if start
// was never set or any state targets an out-of-range ID — a bug in the
// compiler, never a function of user input.
func (b *Builder) Build() (*NFA, error) {
	if b.start == InvalidState {
		return nil, &rerrors.InternalInvariantViolation{Invariant: "nfa-builder", Detail: "start state not set"}
	}
	n := len(b.states)
	inRange := func(id StateID) bool { return id == InvalidState || int(id) < n }
	for i, s := range b.states {
		switch s.Kind {
		case StateChar, StateEpsilon:
			if !inRange(s.Next) {
				return nil, &rerrors.InternalInvariantViolation{
					Invariant: "nfa-builder",
					Detail:    fmt.Sprintf("state %d targets out-of-range next %d", i, s.Next),
				}
			}
		case StateSplit:
			if !inRange(s.Left) || !inRange(s.Right) {
				return nil, &rerrors.InternalInvariantViolation{
					Invariant: "nfa-builder",
					Detail:    fmt.Sprintf("state %d has out-of-range split target", i),
				}
			}
		}
	}
	return &NFA{states: b.states, start: b.start}, nil
}
