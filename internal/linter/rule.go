package linter

import (
	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
)

// Rule inspects a parsed file and reports offenses.
type Rule interface {
	// Name returns the config key for this rule (e.g., "word_array").
	Name() string
	// Check receives the parsed file and config and returns offenses in
	// source order. Rules must not mutate the file.
	Check(file *parser.File, cfg *config.Config) []Offense
}

// Offense is a single reported violation with an optional replacement for
// the span it covers.
type Offense struct {
	Rule    string
	Path    string
	Message string
	Line    int // 1-indexed.
	Column  int // 1-indexed byte column.

	// Span is the byte range the replacement applies to.
	Span        parser.Span
	Replacement string
	Correctable bool
}
