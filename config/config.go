package config

import (
	"os"

	"github.com/coregx/regexset/dfa"
	"github.com/coregx/regexset/nfa"
	"gopkg.in/yaml.v3"
)

// EngineConfig is the single construction-time configuration object spec §6
// names, covering every budget the engine consults: NFA compilation, DFA
// construction (subset construction, minimization, product construction),
// and state elimination all read from the same object.
type EngineConfig struct {
	MaxStates          int  `yaml:"max_states"`
	MaxRegexLength     int  `yaml:"max_regex_length"`
	AllowEmptyLanguage bool `yaml:"allow_empty_language"`

	// Debug enables gologger-backed construction tracing across every
	// compilation and construction step.
	Debug bool `yaml:"debug"`
}

// DefaultEngineConfig mirrors dfa.DefaultConfig's budgets so the two
// packages never drift out of sync.
func DefaultEngineConfig() EngineConfig {
	d := dfa.DefaultConfig()
	return EngineConfig{
		MaxStates:          d.MaxStates,
		MaxRegexLength:     d.MaxRegexLength,
		AllowEmptyLanguage: d.AllowEmptyLanguage,
	}
}

// Load reads an EngineConfig from a YAML file at path, starting from
// DefaultEngineConfig so a file that only overrides one field leaves the
// rest at their defaults.
func Load(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// logger returns the shared gologger adapter when Debug is enabled, nil
// otherwise — a nil Logger disables tracing in both nfa and dfa.
func (c EngineConfig) logger() *GologgerAdapter {
	if !c.Debug {
		return nil
	}
	return NewGologgerAdapter()
}

// NFAConfig derives the nfa package's compiler configuration from c.
func (c EngineConfig) NFAConfig() nfa.CompilerConfig {
	cfg := nfa.CompilerConfig{MaxStates: c.MaxStates}
	if l := c.logger(); l != nil {
		cfg.Logger = l
	}
	return cfg
}

// DFAConfig derives the dfa package's construction configuration from c.
func (c EngineConfig) DFAConfig() dfa.Config {
	cfg := dfa.Config{
		MaxStates:          c.MaxStates,
		MaxRegexLength:     c.MaxRegexLength,
		AllowEmptyLanguage: c.AllowEmptyLanguage,
	}
	if l := c.logger(); l != nil {
		cfg.Logger = l
	}
	return cfg
}
