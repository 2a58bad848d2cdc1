package style

import (
	"strings"
	"unicode/utf8"

	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
	"github.com/donaldgifford/wordarray/internal/rubylit"
)

// RewritePlan is the literal text of every element in the target form plus
// the surrounding syntax.
type RewritePlan struct {
	Form parser.Form
	// Keyword is "%w" or "%W" for word form and empty for brackets.
	Keyword   string
	Open      byte
	Close     byte
	Fragments []string
}

// PlanWords plans a word literal for elems, picking delimiters from prefs.
func PlanWords(elems []DecodedElement, prefs []string) RewritePlan {
	vals := values(elems)
	d := chooseDelimiters(vals, prefs)

	interp := false
	for _, v := range vals {
		if needsEscapes(v) {
			interp = true
			break
		}
	}

	plan := RewritePlan{
		Form:      parser.FormWord,
		Keyword:   "%w",
		Open:      d.open,
		Close:     d.close,
		Fragments: make([]string, len(vals)),
	}
	if interp {
		plan.Keyword = "%W"
	}
	for i, v := range vals {
		plan.Fragments[i] = renderWord(v, interp, d)
	}
	return plan
}

// PlanBrackets plans a bracketed list of string literals for elems. With
// quotes set to config.QuotesSingle, double quotes are still used for the
// whole list when any value cannot be single quoted.
func PlanBrackets(elems []DecodedElement, quotes string) RewritePlan {
	vals := values(elems)

	double := quotes == config.QuotesDouble
	for _, v := range vals {
		if double {
			break
		}
		double = rubylit.NeedsDoubleQuotes(v)
	}

	plan := RewritePlan{
		Form:      parser.FormBracket,
		Open:      '[',
		Close:     ']',
		Fragments: make([]string, len(vals)),
	}
	for i, v := range vals {
		if double {
			plan.Fragments[i] = rubylit.DoubleQuote(v)
		} else {
			plan.Fragments[i] = rubylit.SingleQuote(v)
		}
	}
	return plan
}

// needsEscapes reports whether v can only be written in a %W literal: it
// holds a single quote, an interpolation marker, or a character String#inspect
// escapes. Backslashes alone do not count.
func needsEscapes(v string) bool {
	if strings.ContainsRune(v, '\'') {
		return true
	}
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && size <= 1 {
			return true
		}
		if r != '\\' && r != ' ' {
			if esc := rubylit.EscapeRune(r, false, v[i+size:]); strings.HasPrefix(esc, `\`) {
				return true
			}
		}
		i += size
	}
	return false
}

// renderWord spells v as one word of a %w or %W literal delimited by d.
func renderWord(v string, interp bool, d delimiterPair) string {
	nested := properlyNested(v, d)

	var b strings.Builder
	b.Grow(len(v) + 4)
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		rest := v[i+size:]
		i += size

		switch {
		case r == ' ':
			b.WriteString(`\ `)
		case (r == rune(d.open) || r == rune(d.close)) && !nested:
			b.WriteByte('\\')
			b.WriteRune(r)
		case interp:
			b.WriteString(rubylit.EscapeRune(r, false, rest))
		case r == '\\':
			if wordEscapeFollows(rest, d) {
				b.WriteString(`\\`)
			} else {
				b.WriteByte('\\')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// wordEscapeFollows reports whether a backslash followed by rest would be
// read as an escape inside a %w literal.
func wordEscapeFollows(rest string, d delimiterPair) bool {
	if rest == "" {
		return true
	}
	switch c := rest[0]; c {
	case '\\', ' ', '\t', '\n', '\r', '\f', '\v', d.open, d.close:
		return true
	}
	return false
}
