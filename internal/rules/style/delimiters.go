package style

import "strings"

// defaultDelimiters is used when no configured preference is usable.
const defaultDelimiters = "()"

// delimiterPair is an opening and closing delimiter for a word literal.
type delimiterPair struct {
	open, close byte
}

func (d delimiterPair) paired() bool {
	return d.open != d.close
}

// usableDelimiter reports whether c can delimit a percent literal.
func usableDelimiter(c byte) bool {
	return c > ' ' && c < 0x7f && !isWordByte(c)
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// parseDelimiters keeps the well formed entries of prefs in order. The
// result is never empty.
func parseDelimiters(prefs []string) []delimiterPair {
	out := make([]delimiterPair, 0, len(prefs)+1)
	for _, p := range prefs {
		if len(p) != 2 || !usableDelimiter(p[0]) || !usableDelimiter(p[1]) {
			continue
		}
		out = append(out, delimiterPair{open: p[0], close: p[1]})
	}
	if len(out) == 0 {
		out = append(out, delimiterPair{open: defaultDelimiters[0], close: defaultDelimiters[1]})
	}
	return out
}

// chooseDelimiters returns the first pair that occurs in none of the
// values, or the first pair when every candidate collides.
func chooseDelimiters(vals []string, prefs []string) delimiterPair {
	pairs := parseDelimiters(prefs)
	for _, d := range pairs {
		if !collides(vals, d) {
			return d
		}
	}
	return pairs[0]
}

func collides(vals []string, d delimiterPair) bool {
	for _, v := range vals {
		if strings.IndexByte(v, d.open) >= 0 || strings.IndexByte(v, d.close) >= 0 {
			return true
		}
	}
	return false
}

// properlyNested reports whether every delimiter in v is part of a
// balanced pair. Ruby tracks nesting of paired delimiters inside percent
// literals, so such values need no escapes.
func properlyNested(v string, d delimiterPair) bool {
	if !d.paired() {
		return false
	}
	depth := 0
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case d.open:
			depth++
		case d.close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
