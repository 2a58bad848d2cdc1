// Package linter provides the rule interface, the engine that runs rules
// over a file, and the corrector that applies their replacements.
package linter

import (
	"sort"

	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
)

// Run applies each rule to the file and returns every offense sorted by
// position.
func Run(file *parser.File, cfg *config.Config, rules []Rule) []Offense {
	var offenses []Offense
	for _, rule := range rules {
		for _, o := range rule.Check(file, cfg) {
			if o.Path == "" {
				o.Path = file.Path
			}
			offenses = append(offenses, o)
		}
	}

	sort.SliceStable(offenses, func(i, j int) bool {
		return offenses[i].Span.Start < offenses[j].Span.Start
	})
	return offenses
}
