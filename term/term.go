// Package term implements the thin public facade spec §6 calls Term: a
// tagged value that is either a regular expression string or a materialized
// automaton, dispatching every set operation to the nfa/dfa core and
// deferring automaton construction until an operation actually needs one.
package term

import (
	"github.com/coregx/regexset/config"
	"github.com/coregx/regexset/dfa"
	"github.com/coregx/regexset/nfa"
)

// Term is either a regular expression (not yet compiled) or a materialized
// automaton, or both once an operation has compiled the pattern. The
// automaton is built lazily and cached, so it is never recomputed. A regex
// is never derived from the automaton and stored: ToRegex on a materialized
// Term runs state elimination on every call.
type Term struct {
	cfg config.EngineConfig

	pattern   string
	hasRegex  bool
	dfaCached *dfa.DFA
}

// FromRegex parses pattern with the standard regex fragment (spec §6) and
// returns a Term that defers NFA/DFA construction until an operation needs
// it — a Term built this way never subset-constructs if all its caller ever
// does is call ToRegex trivially or discard it.
func FromRegex(pattern string, cfg config.EngineConfig) (*Term, error) {
	// Validate eagerly so FromRegex itself can return ParseError/
	// UnsupportedSyntaxError, matching spec §6's signature
	// `from_regex(s) -> Term | ParseError | ComplexityError`. The NFA built
	// here is immediately discarded; only the pattern string is retained,
	// since later operations rebuild it anyway once they need a DFA that
	// reflects the caller's current budget.
	c := nfa.NewCompiler(cfg.NFAConfig())
	if _, err := c.Compile(pattern); err != nil {
		return nil, err
	}
	return &Term{cfg: cfg, pattern: pattern, hasRegex: true}, nil
}

// FromAutomaton wraps an already-built DFA as a Term.
func FromAutomaton(d *dfa.DFA, cfg config.EngineConfig) *Term {
	return &Term{cfg: cfg, dfaCached: d}
}

// automaton returns t's materialized DFA, compiling and subset-constructing
// from its pattern the first time it is needed and caching the result.
func (t *Term) automaton() (*dfa.DFA, error) {
	if t.dfaCached != nil {
		return t.dfaCached, nil
	}
	c := nfa.NewCompiler(t.cfg.NFAConfig())
	n, err := c.Compile(t.pattern)
	if err != nil {
		return nil, err
	}
	d, err := dfa.FromNFA(n, t.cfg.DFAConfig())
	if err != nil {
		return nil, err
	}
	t.dfaCached = d
	return t.dfaCached, nil
}

// ToRegex returns a regular expression recognizing the same language as t,
// via state elimination over t's materialized automaton (spec §6). A Term
// built by FromRegex whose automaton has not been materialized yet returns
// its source pattern unchanged. Two Terms that are language-equivalent are
// not guaranteed to render the same string — only IsEquivalent makes that
// guarantee.
func (t *Term) ToRegex() (string, error) {
	if t.hasRegex && t.dfaCached == nil {
		return t.pattern, nil
	}
	d, err := t.automaton()
	if err != nil {
		return "", err
	}
	return dfa.ToRegex(d, t.cfg.DFAConfig())
}

// IsEmpty reports whether t recognizes no strings at all.
func (t *Term) IsEmpty() (bool, error) {
	d, err := t.automaton()
	if err != nil {
		return false, err
	}
	return d.IsEmpty(), nil
}

// IsEquivalent reports whether t and other recognize the same language.
func (t *Term) IsEquivalent(other *Term) (bool, error) {
	a, err := t.automaton()
	if err != nil {
		return false, err
	}
	b, err := other.automaton()
	if err != nil {
		return false, err
	}
	return a.IsEquivalent(b, t.cfg.DFAConfig())
}

// IsSubsetOf reports whether L(t) ⊆ L(other).
func (t *Term) IsSubsetOf(other *Term) (bool, error) {
	a, err := t.automaton()
	if err != nil {
		return false, err
	}
	b, err := other.automaton()
	if err != nil {
		return false, err
	}
	return a.IsSubsetOf(b, t.cfg.DFAConfig())
}

// Union returns a Term recognizing the union of t and every term in others.
func Union(t *Term, others ...*Term) (*Term, error) {
	return combine(t, others, dfa.Union)
}

// Intersection returns a Term recognizing the intersection of t and every
// term in others.
func Intersection(t *Term, others ...*Term) (*Term, error) {
	return combine(t, others, dfa.Intersection)
}

// Subtraction returns a Term recognizing L(t) ∖ L(other).
func (t *Term) Subtraction(other *Term) (*Term, error) {
	a, err := t.automaton()
	if err != nil {
		return nil, err
	}
	b, err := other.automaton()
	if err != nil {
		return nil, err
	}
	d, err := dfa.Difference(a, b, t.cfg.DFAConfig())
	if err != nil {
		return nil, err
	}
	return FromAutomaton(d, t.cfg), nil
}

// Complement returns a Term recognizing Σ* ∖ L(t).
func (t *Term) Complement() (*Term, error) {
	a, err := t.automaton()
	if err != nil {
		return nil, err
	}
	return FromAutomaton(dfa.Complement(a), t.cfg), nil
}

func combine(t *Term, others []*Term, op func(a, b *dfa.DFA, cfg dfa.Config) (*dfa.DFA, error)) (*Term, error) {
	acc, err := t.automaton()
	if err != nil {
		return nil, err
	}
	for _, o := range others {
		b, err := o.automaton()
		if err != nil {
			return nil, err
		}
		acc, err = op(acc, b, t.cfg.DFAConfig())
		if err != nil {
			return nil, err
		}
	}
	return FromAutomaton(acc, t.cfg), nil
}

// StructuralView exposes the §6 structural view of t's materialized
// automaton — state count, alphabet, transition table, accepting bit-set —
// for an external serialization collaborator to encode.
func (t *Term) StructuralView() (dfa.StructuralView, error) {
	d, err := t.automaton()
	if err != nil {
		return dfa.StructuralView{}, err
	}
	return d.View(), nil
}

// Minimize replaces t's materialized automaton with its minimal equivalent,
// materializing it first if needed. Automata built by the dfa package
// (FromNFA and every set operation) are already minimal, so for those the
// state count does not change; it reduces a DFA wrapped with FromAutomaton
// that was built elsewhere, e.g. rebuilt with dfa.FromView.
func (t *Term) Minimize() error {
	d, err := t.automaton()
	if err != nil {
		return err
	}
	m, err := dfa.Minimize(d, t.cfg.DFAConfig())
	if err != nil {
		return err
	}
	t.dfaCached = m
	return nil
}
