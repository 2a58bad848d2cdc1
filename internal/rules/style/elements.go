package style

import (
	"strings"
	"unicode/utf8"

	"github.com/donaldgifford/wordarray/internal/parser"
	"github.com/donaldgifford/wordarray/internal/rubylit"
)

// DecodedElement is the value of one array element after escape
// interpretation.
type DecodedElement struct {
	Value string
	// Representable is false when Value is not valid UTF-8 and so cannot be
	// re-emitted safely.
	Representable bool
}

// Extract decodes every element of arr. It reports false when the array is
// empty, when any element is not a plain string or character literal, or
// when any element decodes to the empty string.
func Extract(arr *parser.ArrayLiteral) ([]DecodedElement, bool) {
	if len(arr.Elements) == 0 {
		return nil, false
	}

	out := make([]DecodedElement, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		v, ok := decodeElement(arr, el)
		if !ok || v == "" {
			return nil, false
		}
		out = append(out, DecodedElement{Value: v, Representable: utf8.ValidString(v)})
	}
	return out, true
}

func decodeElement(arr *parser.ArrayLiteral, el parser.Element) (string, bool) {
	switch el.Kind {
	case parser.ElementString:
		return rubylit.DecodeString(el.Raw)
	case parser.ElementCharacter:
		return rubylit.DecodeCharacter(el.Raw)
	case parser.ElementWord:
		if arr.Form != parser.FormWord {
			return "", false
		}
		return rubylit.DecodeWord(el.Raw, arr.Interpolating(), arr.Open, arr.Close), true
	}
	return "", false
}

func values(elems []DecodedElement) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Value
	}
	return out
}

// complexContent reports whether any element keeps the array out of word
// form: undecodable bytes, an embedded space, or a word the shape rule
// rejects.
func complexContent(elems []DecodedElement, shape *ShapeMatcher) bool {
	for _, e := range elems {
		if complexWord(e.Value, shape) {
			return true
		}
	}
	return false
}

func complexWord(v string, shape *ShapeMatcher) bool {
	return !utf8.ValidString(v) || strings.Contains(v, " ") || !shape.Matches(v)
}

// inComplexMatrix reports whether arr is a row of an array of arrays in
// which some row holds a string that could not be a bare word. Converting
// only the simple rows would leave the matrix half in each style.
func inComplexMatrix(arr *parser.ArrayLiteral, shape *ShapeMatcher) bool {
	for _, row := range arr.Matrix {
		for _, el := range row.Elements {
			v, ok := decodeElement(row, el)
			if !ok {
				continue
			}
			if complexWord(v, shape) {
				return true
			}
		}
	}
	return false
}
