// Package config loads the engine's single construction-time configuration
// object (spec §6) from YAML and adapts it to the nfa and dfa packages'
// budget and logging parameters.
package config

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// GologgerAdapter satisfies both nfa.Logger and dfa.Logger by forwarding
// Debugf to the process-wide gologger instance, the same logging facade the
// rest of the engine's supporting tooling uses.
type GologgerAdapter struct{}

// NewGologgerAdapter returns a Logger that writes through gologger. It
// raises gologger's process-wide level to Debug, since Debug messages are
// dropped at gologger's default level.
func NewGologgerAdapter() *GologgerAdapter {
	gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	return &GologgerAdapter{}
}

func (GologgerAdapter) Debugf(format string, args ...any) {
	gologger.Debug().Msgf(format, args...)
}
