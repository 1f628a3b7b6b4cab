package nfa

import (
	"fmt"
	"regexp/syntax"

	"github.com/coregx/regexset/charclass"
	"github.com/coregx/regexset/rerrors"
)

// CompilerConfig bounds NFA compilation. Bounded repetition ({n,m}) is
// unrolled rather than represented with counter states (spec §4.3
// rationale: simpler subsequent determinization, and the blow-up is bounded
// by the user-supplied bound) — MaxStates is what turns a pathological
// bound into a ComplexityError instead of unbounded memory use.
type CompilerConfig struct {
	// MaxStates caps the number of NFA states a single compilation may
	// produce. Exceeding it aborts with a ComplexityError.
	MaxStates int

	// Logger receives compilation diagnostics (state counts at milestones).
	// Nil is valid and means "don't log" — the core stays pure by default.
	Logger Logger
}

// Logger is the minimal structured-logging surface the engine depends on.
// config.NewGologgerAdapter implements this over
// github.com/projectdiscovery/gologger; tests and library callers that
// don't want logging simply leave CompilerConfig.Logger nil.
type Logger interface {
	Debugf(format string, args ...any)
}

// DefaultCompilerConfig returns sensible defaults: 10,000 states, no logger.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxStates: 10_000}
}

// Compiler turns a regexp/syntax.Regexp AST into a Thompson NFA.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	pattern string // for error messages only
}

// NewCompiler creates a Compiler with the given configuration. A zero
// MaxStates is treated as "use the default".
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxStates == 0 {
		config.MaxStates = DefaultCompilerConfig().MaxStates
	}
	return &Compiler{config: config}
}

// Compile parses pattern with regexp/syntax (the external parser
// collaborator referenced by spec §2) and compiles it into an NFA.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &rerrors.ParseError{Pattern: pattern, Err: err}
	}
	c.pattern = pattern
	return c.CompileRegexp(re)
}

// CompileRegexp compiles an already-parsed AST.
func (c *Compiler) CompileRegexp(re *syntax.Regexp) (*NFA, error) {
	c.builder = NewBuilder()

	start, end, err := c.compileRegexp(re)
	if err != nil {
		return nil, err
	}
	match := c.builder.AddMatch()
	if err := c.builder.Patch(end, match); err != nil {
		return nil, &rerrors.InternalInvariantViolation{Invariant: "nfa-compile", Detail: err.Error()}
	}
	c.builder.SetStart(start)

	if c.config.Logger != nil {
		c.config.Logger.Debugf("nfa compiled: %d states", c.builder.NumStates())
	}

	return c.builder.Build()
}

// budget checks the state count against MaxStates before adding more
// states; called at every construction step that can grow the NFA
// unboundedly (bounded-repetition unrolling, primarily).
func (c *Compiler) budget() error {
	if c.builder.NumStates() > c.config.MaxStates {
		return &rerrors.ComplexityError{
			Stage:  "nfa-compile",
			Limit:  c.config.MaxStates,
			Actual: c.builder.NumStates(),
		}
	}
	return nil
}

// compileRegexp recursively compiles one AST node into an NFA fragment and
// returns (entry, danglingExit). The exit state still needs to be Patch-ed
// by the caller to whatever follows.
func (c *Compiler) compileRegexp(re *syntax.Regexp) (start, end StateID, err error) {
	if err := c.budget(); err != nil {
		return InvalidState, InvalidState, err
	}

	switch re.Op {
	case syntax.OpEmptyMatch:
		id := c.builder.AddEpsilon(InvalidState)
		return id, id, nil

	case syntax.OpLiteral:
		return c.compileLiteral(re.Rune, re.Flags&syntax.FoldCase != 0)

	case syntax.OpCharClass:
		cls := charclass.OfRanges(runesToRanges(re.Rune))
		if re.Flags&syntax.FoldCase != 0 {
			cls = foldedClass(cls)
		}
		id := c.builder.AddChar(cls, InvalidState)
		return id, id, nil

	case syntax.OpAnyChar:
		id := c.builder.AddChar(charclass.Any(), InvalidState)
		return id, id, nil

	case syntax.OpAnyCharNotNL:
		id := c.builder.AddChar(charclass.Any().Subtract(charclass.OfScalar('\n')), InvalidState)
		return id, id, nil

	case syntax.OpConcat:
		return c.compileConcat(re.Sub)

	case syntax.OpAlternate:
		return c.compileAlternate(re.Sub)

	case syntax.OpStar:
		return c.compileStar(re.Sub[0])

	case syntax.OpPlus:
		return c.compilePlus(re.Sub[0])

	case syntax.OpQuest:
		return c.compileQuest(re.Sub[0])

	case syntax.OpRepeat:
		return c.compileRepeat(re.Sub[0], re.Min, re.Max)

	case syntax.OpCapture:
		// Non-capturing semantics: captures are ignored (spec §6).
		return c.compileRegexp(re.Sub[0])

	case syntax.OpBeginText, syntax.OpEndText, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return InvalidState, InvalidState, &rerrors.UnsupportedSyntaxError{
			Pattern: c.pattern,
			Feature: "anchors are not regular operations supported by this engine",
		}

	default:
		return InvalidState, InvalidState, &rerrors.UnsupportedSyntaxError{
			Pattern: c.pattern,
			Feature: re.Op.String(),
		}
	}
}

func (c *Compiler) compileLiteral(runes []rune, fold bool) (start, end StateID, err error) {
	if len(runes) == 0 {
		id := c.builder.AddEpsilon(InvalidState)
		return id, id, nil
	}
	charAt := func(r rune) charclass.CharClass {
		cls := charclass.OfScalar(r)
		if fold {
			cls = foldedClass(cls)
		}
		return cls
	}
	start = c.builder.AddChar(charAt(runes[0]), InvalidState)
	end = start
	for _, r := range runes[1:] {
		if err := c.budget(); err != nil {
			return InvalidState, InvalidState, err
		}
		next := c.builder.AddChar(charAt(r), InvalidState)
		if err := c.builder.Patch(end, next); err != nil {
			return InvalidState, InvalidState, err
		}
		end = next
	}
	return start, end, nil
}

func (c *Compiler) compileConcat(subs []*syntax.Regexp) (start, end StateID, err error) {
	if len(subs) == 0 {
		id := c.builder.AddEpsilon(InvalidState)
		return id, id, nil
	}
	start, end, err = c.compileRegexp(subs[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	for _, sub := range subs[1:] {
		nextStart, nextEnd, err := c.compileRegexp(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if err := c.builder.Patch(end, nextStart); err != nil {
			return InvalidState, InvalidState, err
		}
		end = nextEnd
	}
	return start, end, nil
}

func (c *Compiler) compileAlternate(subs []*syntax.Regexp) (start, end StateID, err error) {
	if len(subs) == 1 {
		return c.compileRegexp(subs[0])
	}

	starts := make([]StateID, 0, len(subs))
	ends := make([]StateID, 0, len(subs))
	for _, sub := range subs {
		s, e, err := c.compileRegexp(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		starts = append(starts, s)
		ends = append(ends, e)
	}

	entry := c.splitChain(starts)
	join := c.builder.AddEpsilon(InvalidState)
	for _, e := range ends {
		if err := c.builder.Patch(e, join); err != nil {
			return InvalidState, InvalidState, err
		}
	}
	return entry, join, nil
}

// splitChain builds a left-leaning chain of Split states distributing
// control to every entry in targets; returns the chain's root.
func (c *Compiler) splitChain(targets []StateID) StateID {
	if len(targets) == 1 {
		return targets[0]
	}
	tail := c.splitChain(targets[1:])
	return c.builder.AddSplit(targets[0], tail)
}

func (c *Compiler) compileStar(sub *syntax.Regexp) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileRegexp(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}
	return split, end, nil
}

func (c *Compiler) compilePlus(sub *syntax.Regexp) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileRegexp(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, split); err != nil {
		return InvalidState, InvalidState, err
	}
	return subStart, end, nil
}

func (c *Compiler) compileQuest(sub *syntax.Regexp) (start, end StateID, err error) {
	subStart, subEnd, err := c.compileRegexp(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	end = c.builder.AddEpsilon(InvalidState)
	split := c.builder.AddSplit(subStart, end)
	if err := c.builder.Patch(subEnd, end); err != nil {
		return InvalidState, InvalidState, err
	}
	return split, end, nil
}

// compileRepeat implements the §4.3 unrolling table for {n}, {n,}, {n,m}.
func (c *Compiler) compileRepeat(sub *syntax.Regexp, min, max int) (start, end StateID, err error) {
	if max == -1 {
		return c.compileRepeatMin(sub, min)
	}
	if min == max {
		return c.compileRepeatExact(sub, min)
	}
	return c.compileRepeatRange(sub, min, max)
}

func (c *Compiler) compileRepeatExact(sub *syntax.Regexp, n int) (start, end StateID, err error) {
	if n == 0 {
		id := c.builder.AddEpsilon(InvalidState)
		return id, id, nil
	}
	subs := make([]*syntax.Regexp, n)
	for i := range subs {
		subs[i] = sub
	}
	return c.compileConcat(subs)
}

func (c *Compiler) compileRepeatMin(sub *syntax.Regexp, min int) (start, end StateID, err error) {
	if min == 0 {
		return c.compileStar(sub)
	}
	subs := make([]*syntax.Regexp, min)
	for i := range subs {
		subs[i] = sub
	}
	subs = append(subs, &syntax.Regexp{Op: syntax.OpStar, Sub: []*syntax.Regexp{sub}})
	return c.compileConcat(subs)
}

func (c *Compiler) compileRepeatRange(sub *syntax.Regexp, min, max int) (start, end StateID, err error) {
	if min > max {
		return InvalidState, InvalidState, &rerrors.ParseError{
			Pattern: c.pattern, Err: fmt.Errorf("invalid repeat range {%d,%d}", min, max),
		}
	}
	subs := make([]*syntax.Regexp, 0, max)
	for i := 0; i < min; i++ {
		subs = append(subs, sub)
	}
	for i := 0; i < max-min; i++ {
		subs = append(subs, &syntax.Regexp{Op: syntax.OpQuest, Sub: []*syntax.Regexp{sub}})
	}
	return c.compileConcat(subs)
}

func runesToRanges(rs []rune) []charclass.ScalarRange {
	out := make([]charclass.ScalarRange, 0, len(rs)/2)
	for i := 0; i+1 < len(rs); i += 2 {
		out = append(out, charclass.ScalarRange{Lo: rs[i], Hi: rs[i+1]})
	}
	return out
}

// foldedClass expands cls to include the simple-case-folded equivalents of
// every scalar it contains (ASCII + Latin-1 letters only, matching the
// surface syntax's documented escape set — full Unicode case folding is out
// of scope per spec.md's Unicode-segmentation non-goal).
func foldedClass(cls charclass.CharClass) charclass.CharClass {
	out := cls
	for _, r := range cls.IterRanges() {
		for ch := r.Lo; ch <= r.Hi; ch++ {
			if ch >= 'a' && ch <= 'z' {
				out = out.UnionWith(charclass.OfScalar(ch - 'a' + 'A'))
			} else if ch >= 'A' && ch <= 'Z' {
				out = out.UnionWith(charclass.OfScalar(ch - 'A' + 'a'))
			} else if ch >= 0xC0 && ch <= 0xDE && ch != 0xD7 {
				out = out.UnionWith(charclass.OfScalar(ch + 0x20))
			} else if ch >= 0xE0 && ch <= 0xFE && ch != 0xF7 {
				out = out.UnionWith(charclass.OfScalar(ch - 0x20))
			}
			if ch > 0x2000 {
				// Bounded folding: don't walk huge ranges rune-by-rune.
				break
			}
		}
	}
	return out
}
