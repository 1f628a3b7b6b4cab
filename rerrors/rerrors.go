// Package rerrors defines the error kinds shared by the automaton engine.
//
// Every error the engine can produce belongs to one of four kinds: a
// malformed pattern (ParseError), a pattern that is syntactically valid but
// not regular (UnsupportedSyntaxError), a construction that exceeded its
// configured budget (ComplexityError), or a failed internal post-condition
// (InternalInvariantViolation). Propagation is one-way: the core never
// retries and never substitutes a simpler result, so every error surfaces
// to the facade unchanged.
package rerrors

import "fmt"

// ParseError indicates the surface regex syntax was malformed.
type ParseError struct {
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in pattern %q: %v", e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedSyntaxError indicates syntactically valid but non-regular
// surface syntax. The compiler reports it for anchors and word boundaries
// and for any parsed operator it does not compile. Backreferences and
// lookaround are refused by regexp/syntax itself and therefore surface as a
// ParseError, not as this kind.
type UnsupportedSyntaxError struct {
	Pattern string
	Feature string
}

func (e *UnsupportedSyntaxError) Error() string {
	return fmt.Sprintf("unsupported syntax in pattern %q: %s", e.Pattern, e.Feature)
}

// ComplexityError indicates a state or regex-length budget was exceeded
// during compilation, subset construction, product construction, or state
// elimination. State elimination also reports a rejected empty language
// (dfa.Config.AllowEmptyLanguage false) as a ComplexityError with Limit and
// Actual both 0.
type ComplexityError struct {
	Stage  string // e.g. "nfa-compile", "subset-construction", "product", "state-elimination"
	Limit  int
	Actual int
}

func (e *ComplexityError) Error() string {
	return fmt.Sprintf("%s exceeded budget: limit=%d actual=%d", e.Stage, e.Limit, e.Actual)
}

// InternalInvariantViolation indicates a DFA failed one of its
// post-conditions (reachability, totality, minimality). This is always a
// bug, never a function of user input, and is fatal.
type InternalInvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violated (%s): %s", e.Invariant, e.Detail)
}

// IsFatal reports whether err represents a bug rather than a user-input
// error. Callers that retry on recoverable errors should never retry on a
// fatal one.
func IsFatal(err error) bool {
	_, ok := err.(*InternalInvariantViolation)
	return ok
}
