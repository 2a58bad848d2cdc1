// Package rubylit decodes and renders Ruby string literals.
//
// Decoding follows the escape rules Ruby applies to single-quoted,
// double-quoted, character and percent-word literals. Rendering mirrors
// String#inspect for UTF-8 strings so that rewritten literals read the way
// Ruby itself would print them.
package rubylit

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// closers maps an opening percent-literal delimiter to its closing pair.
var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// CloseFor returns the closing delimiter for open. Non-bracket delimiters
// close with themselves.
func CloseFor(open byte) byte {
	if c, ok := closers[open]; ok {
		return c
	}
	return open
}

// DecodeString decodes the source text of a plain string literal: '...',
// "...", %q(...), %Q(...) or %(...). It reports false for anything else,
// such as heredocs or malformed input.
func DecodeString(raw string) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}

	switch raw[0] {
	case '\'':
		if raw[len(raw)-1] != '\'' {
			return "", false
		}
		return decodeSingle(raw[1:len(raw)-1], '\'', '\''), true
	case '"':
		if raw[len(raw)-1] != '"' {
			return "", false
		}
		return DecodeDouble(raw[1 : len(raw)-1]), true
	case '%':
		return decodePercentString(raw)
	}
	return "", false
}

func decodePercentString(raw string) (string, bool) {
	kind := byte('Q')
	rest := raw[1:]
	if len(rest) > 0 && (rest[0] == 'q' || rest[0] == 'Q') {
		kind = rest[0]
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return "", false
	}

	open := rest[0]
	if isAlnum(open) || open == ' ' {
		return "", false
	}
	closing := CloseFor(open)
	if rest[len(rest)-1] != closing {
		return "", false
	}

	body := rest[1 : len(rest)-1]
	if kind == 'q' {
		return decodeSingle(body, open, closing), true
	}
	return DecodeDouble(body), true
}

// decodeSingle applies single-quote rules: only a backslash before another
// backslash or a delimiter is an escape.
func decodeSingle(body string, open, closing byte) string {
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			next := body[i+1]
			if next == '\\' || next == open || next == closing {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeCharacter decodes a character literal such as ?a or ?\n.
func DecodeCharacter(raw string) (string, bool) {
	if len(raw) < 2 || raw[0] != '?' {
		return "", false
	}
	body := raw[1:]
	if body[0] == '\\' {
		return DecodeDouble(body), true
	}
	return body, true
}

// DecodeWord decodes one element of a %w (interpolating=false) or %W
// (interpolating=true) literal delimited by open and closing.
func DecodeWord(raw string, interpolating bool, open, closing byte) string {
	if interpolating {
		return DecodeDouble(raw)
	}
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			next := raw[i+1]
			if next == '\\' || next == open || next == closing || IsSpace(next) {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeDouble interprets the escape sequences of a double-quoted literal
// body. Interpolation is not evaluated; callers reject it beforehand.
func DecodeDouble(body string) string {
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			i++
			continue
		}
		n := decodeEscape(&b, body[i+1:])
		i += 1 + n
	}
	return b.String()
}

// decodeEscape writes the value of the escape that starts at s (just past
// the backslash) and returns how many bytes of s it consumed.
func decodeEscape(b *strings.Builder, s string) int {
	switch c := s[0]; c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'e':
		b.WriteByte(0x1b)
	case 's':
		b.WriteByte(' ')
	case '\n':
		// Line continuation.
	case 'x':
		return 1 + decodeHexByte(b, s[1:])
	case 'u':
		return 1 + decodeUnicode(b, s[1:])
	case 'c':
		if len(s) < 2 {
			b.WriteByte(c)
			return 1
		}
		v, n := controlValue(s[1:])
		b.WriteByte(v)
		return 1 + n
	case 'C', 'M':
		if len(s) < 3 || s[1] != '-' {
			b.WriteByte(c)
			return 1
		}
		v, n := controlValue(s[2:])
		if c == 'C' {
			b.WriteByte(v)
		} else {
			b.WriteByte(metaValue(s[2:], v, n))
		}
		return 2 + n
	default:
		if c >= '0' && c <= '7' {
			return decodeOctal(b, s)
		}
		// Unknown escapes drop the backslash.
		_, size := utf8.DecodeRuneInString(s)
		b.WriteString(s[:size])
		return size
	}
	return 1
}

func decodeHexByte(b *strings.Builder, s string) int {
	n := 0
	for n < 2 && n < len(s) && isHex(s[n]) {
		n++
	}
	if n == 0 {
		b.WriteByte('x')
		return 0
	}
	v, _ := strconv.ParseUint(s[:n], 16, 8)
	b.WriteByte(byte(v))
	return n
}

func decodeOctal(b *strings.Builder, s string) int {
	n := 0
	for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
		n++
	}
	v, _ := strconv.ParseUint(s[:n], 8, 16)
	b.WriteByte(byte(v))
	return n
}

func decodeUnicode(b *strings.Builder, s string) int {
	if len(s) > 0 && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			b.WriteByte('u')
			return 0
		}
		for _, field := range strings.Fields(s[1:end]) {
			v, err := strconv.ParseUint(field, 16, 32)
			if err != nil {
				continue
			}
			b.WriteRune(rune(v))
		}
		return end + 1
	}

	if len(s) < 4 {
		b.WriteByte('u')
		return 0
	}
	for i := 0; i < 4; i++ {
		if !isHex(s[i]) {
			b.WriteByte('u')
			return 0
		}
	}
	v, _ := strconv.ParseUint(s[:4], 16, 32)
	b.WriteRune(rune(v))
	return 4
}

// controlValue decodes the operand of \c or \C-, which may itself be an
// escape such as \M-a.
func controlValue(s string) (byte, int) {
	if s[0] == '?' {
		return 0x7f, 1
	}
	if s[0] == '\\' && len(s) > 1 {
		var inner strings.Builder
		n := decodeEscape(&inner, s[1:])
		if inner.Len() > 0 {
			return inner.String()[0] & 0x9f, 1 + n
		}
		return 0, 1 + n
	}
	return s[0] & 0x9f, 1
}

// metaValue decodes the operand of \M-. The control value computed by the
// caller is only meaningful when the operand was a nested \C- or \c escape.
func metaValue(s string, ctrl byte, n int) byte {
	if s[0] == '\\' && n > 1 {
		return ctrl | 0x80
	}
	return s[0] | 0x80
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsSpace reports whether c separates words in a %w or %W literal.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
