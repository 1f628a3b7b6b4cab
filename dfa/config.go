package dfa

// Config configures the budgets and behavior of DFA construction:
// determinization, minimization, product construction, and state
// elimination all consult it before doing unbounded work.
type Config struct {
	// MaxStates bounds the number of states any single construction step
	// (subset construction, product construction) may create. Exceeding it
	// returns a ComplexityError instead of continuing to build an
	// arbitrarily large automaton.
	//
	// Default: 10,000 states.
	MaxStates int

	// MaxRegexLength bounds the length of the string state elimination may
	// produce when converting a DFA back to a regular expression. Automata
	// with many states can legitimately have exponentially large minimal
	// regular expressions; this budget turns that into a ComplexityError
	// rather than an unbounded string.
	//
	// Default: 100,000 runes.
	MaxRegexLength int

	// AllowEmptyLanguage controls whether ToRegex accepts a DFA recognizing
	// the empty language (no accepting state reachable from the start
	// state). When false, ToRegex returns a ComplexityError for such a DFA
	// instead of the empty-language pattern. Construction and the set
	// operations do not consult it and still return empty-language DFAs.
	//
	// Default: true.
	AllowEmptyLanguage bool

	// Logger receives diagnostic messages during construction. Nil disables
	// logging.
	Logger Logger
}

// Logger is the minimal logging interface DFA construction depends on,
// implemented by the config package's gologger adapter.
type Logger interface {
	Debugf(format string, args ...any)
}

// DefaultConfig returns a Config with sensible defaults for interactive use.
func DefaultConfig() Config {
	return Config{
		MaxStates:          10_000,
		MaxRegexLength:     100_000,
		AllowEmptyLanguage: true,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxStates == 0 {
		c.MaxStates = d.MaxStates
	}
	if c.MaxRegexLength == 0 {
		c.MaxRegexLength = d.MaxRegexLength
	}
	return c
}
