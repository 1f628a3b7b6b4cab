package dfa

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/coregx/regexset/charclass"
	"github.com/coregx/regexset/rerrors"
)

// reKind tags the shape of a regexExpr node in the small algebra used only
// by state elimination — it never touches regexp/syntax, since it needs to
// represent fragments over DFA alphabet symbols, not surface regex syntax,
// until the very final render.
type reKind uint8

const (
	reEmpty reKind = iota // ∅, matches nothing
	reEpsilon
	reLiteral // a single alphabet symbol, by index into the DFA's Σ
	reConcat
	reUnion
	reStar
)

type regexExpr struct {
	kind     reKind
	sym      int // reLiteral
	child    *regexExpr
	children []*regexExpr // reConcat, reUnion (flattened, deduplicated for reUnion)
}

var emptyExpr = &regexExpr{kind: reEmpty}
var epsilonExpr = &regexExpr{kind: reEpsilon}

func literalExpr(sym int) *regexExpr { return &regexExpr{kind: reLiteral, sym: sym} }

// unionExpr builds a|b, flattening nested unions and dropping ∅ and
// duplicate arms so repeated elimination steps don't let the expression
// grow unboundedly on redundant paths (spec §4.7).
func unionExpr(a, b *regexExpr) *regexExpr {
	if a.kind == reEmpty {
		return b
	}
	if b.kind == reEmpty {
		return a
	}
	children := make([]*regexExpr, 0, 4)
	if a.kind == reUnion {
		children = append(children, a.children...)
	} else {
		children = append(children, a)
	}
	if b.kind == reUnion {
		children = append(children, b.children...)
	} else {
		children = append(children, b)
	}
	children = dedupeExprs(children)
	if len(children) == 1 {
		return children[0]
	}
	return &regexExpr{kind: reUnion, children: children}
}

// concatExpr builds ab, flattening nested concatenations and collapsing ∅
// and ε per the standard regular-expression identities.
func concatExpr(a, b *regexExpr) *regexExpr {
	if a.kind == reEmpty || b.kind == reEmpty {
		return emptyExpr
	}
	if a.kind == reEpsilon {
		return b
	}
	if b.kind == reEpsilon {
		return a
	}
	children := make([]*regexExpr, 0, 4)
	if a.kind == reConcat {
		children = append(children, a.children...)
	} else {
		children = append(children, a)
	}
	if b.kind == reConcat {
		children = append(children, b.children...)
	} else {
		children = append(children, b)
	}
	return &regexExpr{kind: reConcat, children: children}
}

// starExpr builds a*, collapsing ∅* = ε* = ε and (r*)* = r*.
func starExpr(a *regexExpr) *regexExpr {
	switch a.kind {
	case reEmpty, reEpsilon:
		return epsilonExpr
	case reStar:
		return a
	}
	return &regexExpr{kind: reStar, child: a}
}

func (e *regexExpr) equal(o *regexExpr) bool {
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case reEmpty, reEpsilon:
		return true
	case reLiteral:
		return e.sym == o.sym
	case reStar:
		return e.child.equal(o.child)
	case reConcat, reUnion:
		if len(e.children) != len(o.children) {
			return false
		}
		for i := range e.children {
			if !e.children[i].equal(o.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func dedupeExprs(es []*regexExpr) []*regexExpr {
	out := make([]*regexExpr, 0, len(es))
	for _, e := range es {
		dup := false
		for _, o := range out {
			if e.equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// emptyLanguagePattern is a regexp/syntax-parseable pattern that matches no
// string at all: the negation of the entire scalar range. ToRegex emits
// this for a DFA whose language is empty, since ∅ has no direct regex
// literal.
const emptyLanguagePattern = `[^\x00-\x{10FFFF}]`

// ToRegex converts d back into a regular expression recognizing the same
// language via state elimination (spec §4.7): states are eliminated one at
// a time, folding each removed state's self-loop and through-paths into the
// regex labeling every remaining pair of states, until only a synthetic
// start and final state remain and R[start][final] is the answer.
func ToRegex(d *DFA, cfg Config) (string, error) {
	cfg = cfg.withDefaults()

	n := d.NumStates()
	numSyms := len(d.sigma)
	S, F := n, n+1
	size := n + 2

	R := make([][]*regexExpr, size)
	for i := range R {
		R[i] = make([]*regexExpr, size)
		for j := range R[i] {
			R[i][j] = emptyExpr
		}
	}

	for s := 0; s < n; s++ {
		for sym := 0; sym < numSyms; sym++ {
			t := int(d.Step(StateID(s), sym))
			R[s][t] = unionExpr(R[s][t], literalExpr(sym))
		}
	}
	R[S][int(d.start)] = epsilonExpr
	for s := 0; s < n; s++ {
		if d.accept[s] {
			R[s][F] = unionExpr(R[s][F], epsilonExpr)
		}
	}

	alive := make([]bool, size)
	for i := range alive {
		alive[i] = true
	}

	for _, k := range eliminationOrder(R, n) {
		alive[k] = false
		loop := starExpr(R[k][k])
		for i := 0; i < size; i++ {
			if !alive[i] || i == k || R[i][k].kind == reEmpty {
				continue
			}
			for j := 0; j < size; j++ {
				if !alive[j] || j == k || R[k][j].kind == reEmpty {
					continue
				}
				through := concatExpr(concatExpr(R[i][k], loop), R[k][j])
				R[i][j] = unionExpr(R[i][j], through)
			}
		}
	}

	final := R[S][F]
	var str string
	if final.kind == reEmpty {
		if !cfg.AllowEmptyLanguage {
			return "", &rerrors.ComplexityError{Stage: "state-elimination", Limit: 0, Actual: 0}
		}
		str = emptyLanguagePattern
	} else {
		str = final.String(d.sigma)
	}

	length := utf8.RuneCountInString(str)
	if length > cfg.MaxRegexLength {
		return "", &rerrors.ComplexityError{Stage: "state-elimination", Limit: cfg.MaxRegexLength, Actual: length}
	}
	if cfg.Logger != nil {
		cfg.Logger.Debugf("state elimination: %d states -> %d-rune pattern", n, length)
	}
	return str, nil
}

// eliminationOrder picks a deterministic elimination order for the n
// original DFA states (the synthetic start/final states are never
// eliminated): states with fewer incident non-empty edges go first, which
// tends to keep intermediate expressions smaller, with ties broken by state
// ID so repeated runs on the same DFA always produce the same regex.
func eliminationOrder(R [][]*regexExpr, n int) []int {
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if R[i][j].kind != reEmpty {
				degree[i]++
			}
			if R[j][i].kind != reEmpty {
				degree[i]++
			}
		}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if degree[order[a]] != degree[order[b]] {
			return degree[order[a]] < degree[order[b]]
		}
		return order[a] < order[b]
	})
	return order
}

func (e *regexExpr) String(sigma []charclass.CharClass) string {
	switch e.kind {
	case reEmpty:
		return emptyLanguagePattern
	case reEpsilon:
		return ""
	case reLiteral:
		return renderClass(sigma[e.sym])
	case reConcat:
		var sb strings.Builder
		for _, c := range e.children {
			if c.kind == reUnion {
				sb.WriteByte('(')
				sb.WriteString(c.String(sigma))
				sb.WriteByte(')')
			} else {
				sb.WriteString(c.String(sigma))
			}
		}
		return sb.String()
	case reUnion:
		parts := make([]string, len(e.children))
		for i, c := range e.children {
			parts[i] = c.String(sigma)
		}
		return strings.Join(parts, "|")
	case reStar:
		if e.child.kind == reUnion || e.child.kind == reConcat {
			return "(" + e.child.String(sigma) + ")*"
		}
		return e.child.String(sigma) + "*"
	}
	return ""
}

// renderClass renders a CharClass as surface regex syntax: a single escaped
// literal when it names exactly one scalar, a bracket expression otherwise.
func renderClass(cls charclass.CharClass) string {
	ranges := cls.IterRanges()
	if len(ranges) == 1 && ranges[0].Lo == ranges[0].Hi {
		return escapeLiteralChar(ranges[0].Lo)
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for _, r := range ranges {
		if r.Lo == r.Hi {
			sb.WriteString(escapeClassChar(r.Lo))
		} else {
			sb.WriteString(escapeClassChar(r.Lo))
			sb.WriteByte('-')
			sb.WriteString(escapeClassChar(r.Hi))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func escapeLiteralChar(r rune) string {
	switch r {
	case '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '^', '$', '\\':
		return "\\" + string(r)
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`\x{%x}`, r)
	}
	return string(r)
}

func escapeClassChar(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return "\\" + string(r)
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`\x{%x}`, r)
	}
	return string(r)
}
