package rubylit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// simpleEscapes are the control characters String#inspect writes with a
// mnemonic escape.
var simpleEscapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\f': `\f`,
	'\v': `\v`,
	'\b': `\b`,
	'\a': `\a`,
	0x1b: `\e`,
}

// Escape renders s the way String#inspect renders the body of a UTF-8
// string. When quote is false the double quote is left bare, which is what
// a %W literal needs.
func Escape(s string, quote bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			fmt.Fprintf(&b, `\x%02X`, s[i])
			i++
			continue
		}
		b.WriteString(EscapeRune(r, quote, s[i+size:]))
		i += size
	}
	return b.String()
}

// EscapeRune renders a single rune the way Escape does. rest is the text
// following the rune, needed to spot interpolation markers.
func EscapeRune(r rune, quote bool, rest string) string {
	switch {
	case r == '"':
		if quote {
			return `\"`
		}
		return `"`
	case r == '\\':
		return `\\`
	case r == '#':
		if rest != "" && strings.ContainsRune("{$@", rune(rest[0])) {
			return `\#`
		}
		return "#"
	}
	if esc, ok := simpleEscapes[r]; ok {
		return esc
	}
	if unicode.IsGraphic(r) {
		return string(r)
	}
	if r > 0xFFFF {
		return fmt.Sprintf(`\u{%X}`, r)
	}
	return fmt.Sprintf(`\u%04X`, r)
}

// NeedsDoubleQuotes reports whether s cannot be written as a single-quoted
// literal: it contains a single quote, or a character inspect would escape
// other than a backslash or double quote.
func NeedsDoubleQuotes(s string) bool {
	if strings.ContainsRune(s, '\'') {
		return true
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return true
		}
		if r != '"' && r != '\\' {
			if esc := EscapeRune(r, true, s[i+size:]); strings.HasPrefix(esc, `\`) {
				return true
			}
		}
		i += size
	}
	return false
}

// SingleQuote renders s as a single-quoted literal.
func SingleQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// DoubleQuote renders s as a double-quoted literal.
func DoubleQuote(s string) string {
	return `"` + Escape(s, true) + `"`
}

// Quote picks single quotes when they can carry s and double quotes
// otherwise.
func Quote(s string) string {
	if NeedsDoubleQuotes(s) {
		return DoubleQuote(s)
	}
	return SingleQuote(s)
}
