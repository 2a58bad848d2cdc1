package style

import (
	"strings"

	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
)

// Verdict is the outcome of classifying one array literal.
type Verdict int

const (
	// NoOffense leaves the array alone.
	NoOffense Verdict = iota
	// OffenseToWord asks for a %w or %W literal.
	OffenseToWord
	// OffenseToBracket asks for a bracketed list of strings.
	OffenseToBracket
)

func (v Verdict) String() string {
	switch v {
	case OffenseToWord:
		return "to-word"
	case OffenseToBracket:
		return "to-bracket"
	default:
		return "none"
	}
}

// Options carries the settings that drive classification.
type Options struct {
	// Style is config.StyleWord or config.StyleBracket. The auto style is
	// resolved by the rule before classification.
	Style   string
	MinSize int
	Shape   *ShapeMatcher
	// EncodingOK is false when the file declares an encoding whose
	// literals cannot be rewritten as UTF-8.
	EncodingOK bool
}

// assessment is everything about an array that does not depend on the
// enforced style or the size threshold.
type assessment struct {
	form parser.Form
	size int
	// usable is false when nothing about the array may be reported.
	usable bool
	// simpleWords marks a bracketed array that could be a word literal.
	simpleWords bool
	// needsBrackets marks a word literal holding a value with a space,
	// which only brackets can express.
	needsBrackets bool
}

func assess(elems []DecodedElement, ok bool, arr *parser.ArrayLiteral, opts Options) assessment {
	a := assessment{form: arr.Form, size: len(elems)}
	if !ok || !opts.EncodingOK {
		return a
	}
	for _, e := range elems {
		if !e.Representable {
			return a
		}
	}
	a.usable = true

	switch arr.Form {
	case parser.FormBracket:
		a.simpleWords = !complexContent(elems, opts.Shape) &&
			!inComplexMatrix(arr, opts.Shape) &&
			!arr.HasComments &&
			!arr.AmbiguousCall
	case parser.FormWord:
		for _, e := range elems {
			if strings.Contains(e.Value, " ") {
				a.needsBrackets = true
				break
			}
		}
	}
	return a
}

func (a assessment) verdict(style string, minSize int) Verdict {
	if !a.usable || a.size < minSize {
		return NoOffense
	}
	switch a.form {
	case parser.FormBracket:
		if a.simpleWords && style == config.StyleWord {
			return OffenseToWord
		}
	case parser.FormWord:
		if a.needsBrackets || style == config.StyleBracket {
			return OffenseToBracket
		}
	}
	return NoOffense
}

// Classify decides whether arr should be rewritten. elems and ok are the
// result of Extract.
func Classify(elems []DecodedElement, ok bool, arr *parser.ArrayLiteral, opts Options) Verdict {
	return assess(elems, ok, arr, opts).verdict(opts.Style, opts.MinSize)
}
