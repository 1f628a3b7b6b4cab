package dfa

import "github.com/coregx/regexset/charclass"

// StructuralView is the read-only snapshot spec §6 grants to an external
// serialization collaborator: state count, alphabet, a flat |Q|·|Σ|
// transition vector, and the accepting bit-set. It carries no encode/decode
// logic of its own — that belongs to whatever wire format a collaborator
// chooses — but its shape is exactly what a lossless, canonical round trip
// needs to rebuild an equal DFA with dfa.New.
type StructuralView struct {
	NumStates int
	Alphabet  []charclass.CharClass
	Table     []StateID // row-major, Table[s*len(Alphabet)+sym] = δ(s, sym)
	Accepting []bool
	Start     StateID
}

// View returns d's structural snapshot. The returned slices are copies, so
// mutating them never affects d.
func (d *DFA) View() StructuralView {
	alphabet := append([]charclass.CharClass{}, d.sigma...)
	table := append([]StateID{}, d.table...)
	accepting := append([]bool{}, d.accept...)
	return StructuralView{
		NumStates: len(d.accept),
		Alphabet:  alphabet,
		Table:     table,
		Accepting: accepting,
		Start:     d.start,
	}
}

// FromView rebuilds a DFA from a structural view, e.g. after decoding one
// from a collaborator's wire format. Does not re-validate totality: callers
// decoding untrusted input should do so before calling FromView.
func FromView(v StructuralView) *DFA {
	return New(v.Alphabet, v.Table, v.Accepting, v.Start)
}
