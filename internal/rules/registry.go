// Package rules manages registration of lint rules.
package rules

import (
	"github.com/donaldgifford/wordarray/internal/advisor"
	"github.com/donaldgifford/wordarray/internal/linter"
)

// Factory builds a rule instance that reports to the run's advisor.
type Factory func(adv *advisor.Advisor) linter.Rule

var factories []Factory

// Register adds a rule factory to the registry.
// Rules are run in the order they are registered.
func Register(f Factory) {
	factories = append(factories, f)
}

// New instantiates every registered rule for one run.
func New(adv *advisor.Advisor) []linter.Rule {
	out := make([]linter.Rule, 0, len(factories))
	for _, f := range factories {
		out = append(out, f(adv))
	}
	return out
}
