// Command regexset is a CLI facade over the term package's set-algebra
// operations on regular languages (spec §6).
package main

import "github.com/projectdiscovery/gologger"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
