package dfa

import "github.com/coregx/regexset/charclass"

// Union returns a DFA recognizing L(a) ∪ L(b).
func Union(a, b *DFA, cfg Config) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x || y }, cfg)
}

// Intersection returns a DFA recognizing L(a) ∩ L(b).
func Intersection(a, b *DFA, cfg Config) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x && y }, cfg)
}

// Difference returns a DFA recognizing L(a) ∖ L(b).
func Difference(a, b *DFA, cfg Config) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x && !y }, cfg)
}

// SymmetricDifference returns a DFA recognizing L(a) ∆ L(b).
func SymmetricDifference(a, b *DFA, cfg Config) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x != y }, cfg)
}

// Complement returns a DFA recognizing Σ* ∖ L(a). a's alphabet is already
// total over the full scalar domain (an invariant every constructor in this
// package maintains), so flipping every accept bit is correct on its own —
// no new states or alphabet symbols are needed.
func Complement(a *DFA) *DFA {
	accept := make([]bool, len(a.accept))
	for i, v := range a.accept {
		accept[i] = !v
	}
	sigma := append([]charclass.CharClass{}, a.sigma...)
	table := append([]StateID{}, a.table...)
	return New(sigma, table, accept, a.start)
}
