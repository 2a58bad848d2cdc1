// Package advisor accumulates array-size observations across every rule
// instance of one run and recommends a configuration that would silence
// the offenses seen in that run.
package advisor

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
)

// Style is the form an observed array was written in.
type Style string

const (
	// StyleWord is a percent word literal.
	StyleWord Style = "word"
	// StyleBracket is a bracketed list of strings.
	StyleBracket Style = "bracket"
)

// Advisor is a run-scoped aggregator. The zero value is not ready; use New.
// It is safe for concurrent use.
type Advisor struct {
	mu              sync.Mutex
	largestBracket  int
	smallestWord    int
	noAcceptable    bool
	observedBracket int
	observedWord    int
}

// New returns a reset Advisor.
func New() *Advisor {
	a := &Advisor{}
	a.Reset()
	return a
}

// Reset clears all observations. Call it once at the start of every
// independent run.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.largestBracket = math.MinInt
	a.smallestWord = math.MaxInt
	a.noAcceptable = false
	a.observedBracket = 0
	a.observedWord = 0
}

// Observe records an array of size elements written in style.
func (a *Advisor) Observe(style Style, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch style {
	case StyleBracket:
		a.observedBracket++
		a.largestBracket = max(a.largestBracket, size)
	case StyleWord:
		a.observedWord++
		a.smallestWord = min(a.smallestWord, size)
	}
}

// NoAcceptableStyle records an array that no configuration can accept,
// such as a word literal whose words contain spaces.
func (a *Advisor) NoAcceptableStyle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.noAcceptable = true
}

// LargestBracket returns the size of the largest bracketed word array
// observed, and false when none was.
func (a *Advisor) LargestBracket() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.largestBracket, a.observedBracket > 0
}

// Recommendation is a configuration change for the word_array rule.
type Recommendation struct {
	Disable       bool
	EnforcedStyle string
	MinSize       int // Zero means leave the setting alone.
}

// Recommend returns the configuration that silences every offense
// observed so far. Observation order does not affect the result.
func (a *Advisor) Recommend() Recommendation {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.noAcceptable:
		return Recommendation{Disable: true}
	case a.observedBracket > 0 && a.observedWord > 0 && a.smallestWord <= a.largestBracket:
		return Recommendation{Disable: true}
	case a.observedBracket > 0:
		return Recommendation{EnforcedStyle: string(StyleWord), MinSize: a.largestBracket + 1}
	default:
		return Recommendation{EnforcedStyle: string(StyleWord)}
	}
}

type ruleYAML struct {
	Enabled       *bool  `yaml:"enabled,omitempty"`
	EnforcedStyle string `yaml:"enforced_style,omitempty"`
	MinSize       int    `yaml:"min_size,omitempty"`
}

// Config renders the recommendation as a config file fragment for the
// rule named name.
func (r Recommendation) Config(name string) (string, error) {
	rule := ruleYAML{
		EnforcedStyle: r.EnforcedStyle,
		MinSize:       r.MinSize,
	}
	if r.Disable {
		disabled := false
		rule = ruleYAML{Enabled: &disabled}
	}

	doc := map[string]map[string]ruleYAML{
		"rules": {name: rule},
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("rendering recommendation: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("rendering recommendation: %w", err)
	}
	return buf.String(), nil
}

func (r Recommendation) String() string {
	if r.Disable {
		return "disable"
	}
	if r.MinSize > 0 {
		return fmt.Sprintf("enforced_style=%s min_size=%d", r.EnforcedStyle, r.MinSize)
	}
	return "enforced_style=" + r.EnforcedStyle
}
