// Package style implements the word_array rule: arrays of simple words are
// written as %w / %W literals (or as bracketed string lists, depending on
// the enforced style) and can be corrected in either direction.
package style

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/wordarray/internal/advisor"
	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/linter"
	"github.com/donaldgifford/wordarray/internal/parser"
)

// RuleName is the config key and reported name of the rule.
const RuleName = "word_array"

const (
	msgToWord         = "Use `%w` or `%W` for an array of words."
	msgToBracket      = "Use `%s` for an array of words."
	msgToBracketMulti = "Use an array literal `[...]` for an array of words."
)

// WordArray enforces a consistent style for arrays of words.
type WordArray struct {
	adv *advisor.Advisor
}

// NewWordArray returns the rule reporting its observations to adv. adv may
// be nil when no configuration recommendation is wanted.
func NewWordArray(adv *advisor.Advisor) *WordArray {
	return &WordArray{adv: adv}
}

// Name returns the config key of the rule.
func (r *WordArray) Name() string { return RuleName }

// candidate is one array of the file together with its decoded elements.
type candidate struct {
	arr   *parser.ArrayLiteral
	elems []DecodedElement
	a     assessment
}

// Check reports every array not written in the enforced style.
func (r *WordArray) Check(file *parser.File, cfg *config.Config) []linter.Offense {
	w := cfg.Rules.WordArray
	if !w.Enabled {
		return nil
	}

	opts := Options{
		Style:      w.EnforcedStyle,
		MinSize:    w.MinSize,
		Shape:      CompileShape(w.WordRegex),
		EncodingOK: EncodingCompatible(file.Encoding),
	}

	cands := make([]candidate, 0, len(file.Arrays))
	for _, arr := range file.Arrays {
		elems, ok := Extract(arr)
		c := candidate{arr: arr, elems: elems, a: assess(elems, ok, arr, opts)}
		r.observe(c.a)
		cands = append(cands, c)
	}

	style := opts.Style
	if style == config.StyleAuto {
		style = fewestOffenses(cands, opts.MinSize)
	}

	var offenses []linter.Offense
	for _, c := range cands {
		v := c.a.verdict(style, opts.MinSize)
		if v == NoOffense {
			continue
		}
		offenses = append(offenses, r.offense(c, v, w, file.Source))
	}
	return offenses
}

func (r *WordArray) observe(a assessment) {
	// Arrays that can never be rewritten (non-UTF-8 file, undecodable values) are not observed.
	if r.adv == nil || !a.usable {
		return
	}
	switch {
	case a.form == parser.FormBracket && a.simpleWords:
		r.adv.Observe(advisor.StyleBracket, a.size)
	case a.form == parser.FormWord && a.needsBrackets:
		r.adv.NoAcceptableStyle()
	case a.form == parser.FormWord:
		r.adv.Observe(advisor.StyleWord, a.size)
	}
}

// fewestOffenses picks the style that would report fewer arrays in the
// file. Ties go to the word style.
func fewestOffenses(cands []candidate, minSize int) string {
	toWord, toBracket := 0, 0
	for _, c := range cands {
		if c.a.verdict(config.StyleWord, minSize) != NoOffense {
			toWord++
		}
		if c.a.verdict(config.StyleBracket, minSize) != NoOffense {
			toBracket++
		}
	}
	if toBracket < toWord {
		return config.StyleBracket
	}
	return config.StyleWord
}

func (r *WordArray) offense(c candidate, v Verdict, w config.WordArrayConfig, src string) linter.Offense {
	var plan RewritePlan
	if v == OffenseToWord {
		plan = PlanWords(c.elems, w.PreferredDelimiters)
	} else {
		plan = PlanBrackets(c.elems, w.BracketQuotes)
	}
	replacement, ok := Rewrite(c.arr, plan, src)

	o := linter.Offense{
		Rule:        RuleName,
		Line:        c.arr.Line,
		Column:      c.arr.Column,
		Span:        c.arr.Span,
		Replacement: replacement,
		Correctable: ok,
	}
	switch {
	case v == OffenseToWord:
		o.Message = msgToWord
	case !ok || strings.ContainsAny(replacement, "\r\n"):
		o.Message = msgToBracketMulti
	default:
		o.Message = fmt.Sprintf(msgToBracket, replacement)
	}
	return o
}
