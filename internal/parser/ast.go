// Package parser turns Ruby source into the array-literal view the style
// rules inspect. It is backed by tree-sitter and keeps byte offsets into the
// original text so that rules can replace spans without touching anything
// else.
package parser

// Form classifies how an array literal is written.
type Form int

const (
	// FormBracket is an explicit list: ['a', 'b'].
	FormBracket Form = iota
	// FormWord is a percent word literal: %w(a b) or %W(a b).
	FormWord
)

func (f Form) String() string {
	if f == FormWord {
		return "word"
	}
	return "bracket"
}

// ElementKind is the closed set of element shapes a rule can see.
type ElementKind int

const (
	// ElementIneligible is anything that is not a plain literal: numbers,
	// calls, interpolated strings, heredocs, nested arrays.
	ElementIneligible ElementKind = iota
	// ElementString is a non-interpolated string literal.
	ElementString
	// ElementCharacter is a character literal such as ?a.
	ElementCharacter
	// ElementWord is one word of a percent word literal.
	ElementWord
)

// Span is a half-open byte range [Start, End) into File.Source.
type Span struct {
	Start int
	End   int
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Element is one entry of an array literal.
type Element struct {
	Kind    ElementKind
	Raw     string // Source text of the element.
	Span    Span
	Line    int // 1-indexed first line.
	EndLine int // 1-indexed last line.
}

// ArrayLiteral is an array literal together with the context rules need
// to decide whether it can be rewritten.
type ArrayLiteral struct {
	Form Form
	// Prefix is 'w' or 'W' for word literals, zero for brackets.
	Prefix byte
	// Open and Close are the delimiters: '[' and ']' for brackets.
	Open  byte
	Close byte

	Span       Span
	OpenEnd    int // Offset just past the opening delimiter.
	CloseStart int // Offset of the closing delimiter.
	Line       int // 1-indexed.
	Column     int // 1-indexed byte column.
	EndLine    int

	Elements []Element

	// HasComments is set when a comment starts inside the span.
	HasComments bool
	// AmbiguousCall is set when the array is an unparenthesized argument
	// of a call that takes a block literal.
	AmbiguousCall bool
	// Matrix holds every row of the enclosing array when this array is one
	// row of an array made only of arrays. Nil otherwise.
	Matrix []*ArrayLiteral
}

// Interpolating reports whether word elements follow double-quote escape
// rules (%W).
func (a *ArrayLiteral) Interpolating() bool {
	return a.Prefix == 'W'
}

// Multiline reports whether the literal spans more than one line.
func (a *ArrayLiteral) Multiline() bool {
	return a.EndLine > a.Line
}

// File is a parsed Ruby source file.
type File struct {
	Path   string
	Source string
	// Encoding is the encoding named by a magic comment, or empty.
	Encoding string
	Arrays   []*ArrayLiteral
	Comments []Span
}
