package main

import (
	"fmt"

	"github.com/martinemde/chemformula/formula"
	"github.com/martinemde/chemformula/grammar"
)

const (
	engineDescent = "descent"
	engineGrammar = "grammar"
)

type parseFunc func(src string) (formula.Counts, error)

// selectEngine maps an engine name to its parse function.
func selectEngine(name string) (parseFunc, error) {
	switch name {
	case engineDescent, "":
		return formula.Parse, nil
	case engineGrammar:
		return grammar.Parse, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s or %s)", name, engineDescent, engineGrammar)
	}
}
