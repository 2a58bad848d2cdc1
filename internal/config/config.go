// Package config defines the configuration types and defaults for wordarray.
package config

import (
	"errors"
	"fmt"
)

// Enforced styles for the word_array rule.
const (
	StyleWord    = "word"
	StyleBracket = "bracket"
	StyleAuto    = "auto"
)

// Quote styles for bracketed output.
const (
	QuotesSingle = "single"
	QuotesDouble = "double"
)

// DefaultWordRegex accepts words made of word characters, hyphen-joined
// words, and embedded newlines or tabs.
const DefaultWordRegex = `\A(?:\w|\w-\w|\n|\t)+\z`

// Config is the top-level configuration.
type Config struct {
	Rules   RulesConfig `yaml:"rules"`
	Exclude []string    `yaml:"exclude"`
}

// RulesConfig holds per-rule settings.
type RulesConfig struct {
	WordArray WordArrayConfig `yaml:"word_array"`
}

// WordArrayConfig holds the settings of the word_array rule.
type WordArrayConfig struct {
	Enabled             bool     `yaml:"enabled"`
	EnforcedStyle       string   `yaml:"enforced_style"`
	MinSize             int      `yaml:"min_size"`
	WordRegex           string   `yaml:"word_regex"`
	PreferredDelimiters []string `yaml:"preferred_delimiters"`
	BracketQuotes       string   `yaml:"bracket_quotes"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			WordArray: WordArrayConfig{
				Enabled:             true,
				EnforcedStyle:       StyleWord,
				MinSize:             2,
				WordRegex:           DefaultWordRegex,
				PreferredDelimiters: []string{"()"},
				BracketQuotes:       QuotesSingle,
			},
		},
	}
}

// Validate reports settings that cannot be interpreted. An invalid
// word_regex is not reported here: the rule degrades to never matching.
func (c *Config) Validate() error {
	var errs []error

	w := c.Rules.WordArray
	switch w.EnforcedStyle {
	case StyleWord, StyleBracket, StyleAuto:
	default:
		errs = append(errs, fmt.Errorf("word_array.enforced_style: unknown style %q", w.EnforcedStyle))
	}
	switch w.BracketQuotes {
	case QuotesSingle, QuotesDouble:
	default:
		errs = append(errs, fmt.Errorf("word_array.bracket_quotes: unknown quote style %q", w.BracketQuotes))
	}
	if w.MinSize < 0 {
		errs = append(errs, fmt.Errorf("word_array.min_size: must not be negative, got %d", w.MinSize))
	}
	for _, d := range w.PreferredDelimiters {
		if len(d) != 2 {
			errs = append(errs, fmt.Errorf("word_array.preferred_delimiters: %q is not a delimiter pair", d))
		}
	}

	return errors.Join(errs...)
}
