package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/donaldgifford/wordarray/internal/rubylit"
)

// magicCommentRe matches an encoding magic comment such as
// "# encoding: utf-8" or "# -*- coding: euc-jp -*-".
var magicCommentRe = regexp.MustCompile(`(?i)^#.*\b(?:en)?coding\s*[:=]\s*([\w.-]+)`)

// Parser wraps a tree-sitter parser configured for Ruby. A Parser is not
// safe for concurrent use; give each worker its own.
type Parser struct {
	ts *sitter.Parser
}

// New returns a Ruby parser. Call Close when done.
func New() *Parser {
	ts := sitter.NewParser()
	ts.SetLanguage(ruby.GetLanguage())
	return &Parser{ts: ts}
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.ts.Close()
}

// Parse is a convenience wrapper that parses src with a throwaway parser.
func Parse(src string) (*File, error) {
	p := New()
	defer p.Close()
	return p.Parse(context.Background(), "", []byte(src))
}

// Parse extracts array literals, comments and the declared encoding from
// Ruby source.
func (p *Parser) Parse(ctx context.Context, path string, src []byte) (*File, error) {
	tree, err := p.ts.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", displayPath(path), err)
	}
	defer tree.Close()

	w := &walker{
		src:      src,
		byNode:   make(map[Span]*ArrayLiteral),
		matrices: make(map[Span]*sitter.Node),
	}
	w.walk(tree.RootNode())
	w.link()

	return &File{
		Path:     path,
		Source:   string(src),
		Encoding: DetectEncoding(string(src)),
		Arrays:   w.arrays,
		Comments: w.comments,
	}, nil
}

// walker collects array literals and comments in source order.
type walker struct {
	src      []byte
	arrays   []*ArrayLiteral
	comments []Span
	byNode   map[Span]*ArrayLiteral
	matrices map[Span]*sitter.Node
}

func (w *walker) walk(n *sitter.Node) {
	switch n.Type() {
	case "comment":
		w.comments = append(w.comments, nodeSpan(n))
		return
	case "array":
		w.addArray(n, w.bracketArray(n))
	case "string_array":
		w.addArray(n, w.wordArray(n))
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i))
	}
}

func (w *walker) addArray(n *sitter.Node, arr *ArrayLiteral) {
	arr.AmbiguousCall = isAmbiguousCallArgument(n)
	w.arrays = append(w.arrays, arr)
	w.byNode[arr.Span] = arr
	if isMatrix(n) {
		parent := n.Parent()
		w.matrices[nodeSpan(parent)] = parent
	}
}

// link resolves matrix rows and inline comments once the whole tree has
// been walked.
func (w *walker) link() {
	for _, m := range w.matrices {
		var rows []*ArrayLiteral
		for _, child := range namedValues(m) {
			if row, ok := w.byNode[nodeSpan(child)]; ok {
				rows = append(rows, row)
			}
		}
		for _, row := range rows {
			row.Matrix = rows
		}
	}

	for _, arr := range w.arrays {
		inner := Span{Start: arr.OpenEnd, End: arr.CloseStart}
		for _, c := range w.comments {
			if inner.Contains(c.Start) {
				arr.HasComments = true
				break
			}
		}
	}
}

func (w *walker) bracketArray(n *sitter.Node) *ArrayLiteral {
	arr := newArray(n, FormBracket)
	arr.Open, arr.Close = '[', ']'
	arr.OpenEnd = arr.Span.Start + 1
	arr.CloseStart = arr.Span.End - 1

	for _, child := range namedValues(n) {
		arr.Elements = append(arr.Elements, w.element(child, classifyValue(child)))
	}
	return arr
}

func (w *walker) wordArray(n *sitter.Node) *ArrayLiteral {
	arr := newArray(n, FormWord)
	start := arr.Span.Start
	if start+3 <= len(w.src) && w.src[start] == '%' {
		arr.Prefix = w.src[start+1]
		arr.Open = w.src[start+2]
		arr.Close = rubylit.CloseFor(arr.Open)
	}
	arr.OpenEnd = start + 3
	arr.CloseStart = arr.Span.End - 1

	for _, child := range namedValues(n) {
		if child.Type() != "bare_string" || hasChild(child, "interpolation") {
			arr.Elements = append(arr.Elements, w.element(child, ElementIneligible))
			continue
		}
		arr.Elements = append(arr.Elements, w.words(child)...)
	}
	return arr
}

// words splits a bare_string into one element per word. The grammar
// attaches a word that starts with an escape to the word before it, so a
// single node can hold several words separated by unescaped whitespace.
func (w *walker) words(n *sitter.Node) []Element {
	base := int(n.StartByte())
	row := int(n.StartPoint().Row) + 1
	raw := n.Content(w.src)

	var elems []Element
	for _, s := range splitWords(raw) {
		line := row + strings.Count(raw[:s.Start], "\n")
		elems = append(elems, Element{
			Kind:    ElementWord,
			Raw:     raw[s.Start:s.End],
			Span:    Span{Start: base + s.Start, End: base + s.End},
			Line:    line,
			EndLine: line + strings.Count(raw[s.Start:s.End], "\n"),
		})
	}
	return elems
}

// splitWords returns the offsets of the words in raw. A backslash always
// takes the following byte into the current word.
func splitWords(raw string) []Span {
	var spans []Span
	start := -1
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if rubylit.IsSpace(c) {
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
		if c == '\\' && i+1 < len(raw) {
			i++
			if raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(raw)})
	}
	return spans
}

func (w *walker) element(n *sitter.Node, kind ElementKind) Element {
	return Element{
		Kind:    kind,
		Raw:     n.Content(w.src),
		Span:    nodeSpan(n),
		Line:    int(n.StartPoint().Row) + 1,
		EndLine: int(n.EndPoint().Row) + 1,
	}
}

func newArray(n *sitter.Node, form Form) *ArrayLiteral {
	return &ArrayLiteral{
		Form:    form,
		Span:    nodeSpan(n),
		Line:    int(n.StartPoint().Row) + 1,
		Column:  int(n.StartPoint().Column) + 1,
		EndLine: int(n.EndPoint().Row) + 1,
	}
}

// classifyValue maps an array value node onto an ElementKind.
func classifyValue(n *sitter.Node) ElementKind {
	switch n.Type() {
	case "string":
		if hasChild(n, "interpolation") {
			return ElementIneligible
		}
		return ElementString
	case "character":
		return ElementCharacter
	}
	return ElementIneligible
}

// isAmbiguousCallArgument reports whether n is an argument of a call
// written without parentheses that also takes a block literal, e.g.
// `foo ['a', 'b'] do ... end`. Rewriting the argument there can change
// how the block binds.
func isAmbiguousCallArgument(n *sitter.Node) bool {
	args := n.Parent()
	if args == nil || args.Type() != "argument_list" {
		return false
	}
	if args.ChildCount() > 0 && args.Child(0).Type() == "(" {
		return false
	}

	call := args.Parent()
	if call == nil {
		return false
	}
	switch call.Type() {
	case "call", "method_call", "command_call":
	default:
		return false
	}

	if call.ChildByFieldName("block") != nil {
		return true
	}
	for i := 0; i < int(call.NamedChildCount()); i++ {
		switch call.NamedChild(i).Type() {
		case "block", "do_block":
			return true
		}
	}
	return false
}

// isMatrix reports whether n is a bracketed array whose values are all
// arrays.
func isMatrix(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "array" {
		return false
	}
	values := namedValues(parent)
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v.Type() != "array" && v.Type() != "string_array" {
			return false
		}
	}
	return true
}

// namedValues returns the named children of n, skipping comments.
func namedValues(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

func hasChild(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == typ {
			return true
		}
	}
	return false
}

func nodeSpan(n *sitter.Node) Span {
	return Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// DetectEncoding returns the encoding named by a magic comment on the
// first line, or the second line when the first is a shebang.
func DetectEncoding(src string) string {
	lines := strings.SplitN(src, "\n", 3)
	for i, line := range lines {
		if i > 1 {
			break
		}
		if i == 0 && strings.HasPrefix(line, "#!") {
			continue
		}
		if m := magicCommentRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return m[1]
		}
		if i == 0 {
			break
		}
	}
	return ""
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
