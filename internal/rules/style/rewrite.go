package style

import (
	"strings"
	"unicode"

	"github.com/donaldgifford/wordarray/internal/parser"
)

// Rewrite renders arr in the form described by plan. Only text inside the
// array span is rebuilt: an element that started a new line keeps doing
// so with the same indentation, as does the closing delimiter. Elements
// sharing a line are separated by a single space. It reports false when
// the spans of arr do not fit src or do not match the plan.
func Rewrite(arr *parser.ArrayLiteral, plan RewritePlan, src string) (string, bool) {
	if len(plan.Fragments) == 0 || len(plan.Fragments) != len(arr.Elements) || !validSpans(arr, src) {
		return "", false
	}

	var b strings.Builder
	b.Grow(arr.Span.End - arr.Span.Start + 2*len(plan.Fragments))
	b.WriteString(plan.Keyword)
	b.WriteByte(plan.Open)

	prev := arr.OpenEnd
	for i, el := range arr.Elements {
		if i > 0 && plan.Form == parser.FormBracket {
			b.WriteByte(',')
		}
		if layout, ok := lineBreak(src[prev:el.Span.Start]); ok {
			b.WriteString(layout)
		} else if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(plan.Fragments[i])
		prev = el.Span.End
	}

	if layout, ok := lineBreak(src[prev:arr.CloseStart]); ok {
		b.WriteString(layout)
	}
	b.WriteByte(plan.Close)
	return b.String(), true
}

// lineBreak returns the whitespace of gap from its first line break on,
// dropping separators such as commas. It reports false when gap does not
// break the line.
func lineBreak(gap string) (string, bool) {
	i := strings.IndexAny(gap, "\r\n")
	if i < 0 {
		return "", false
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return r
		}
		return -1
	}, gap[i:]), true
}

func validSpans(arr *parser.ArrayLiteral, src string) bool {
	if arr.Span.Start < 0 || arr.Span.End > len(src) || arr.Span.Start > arr.Span.End {
		return false
	}
	if arr.OpenEnd <= arr.Span.Start || arr.CloseStart < arr.OpenEnd || arr.CloseStart >= arr.Span.End {
		return false
	}
	prev := arr.OpenEnd
	for _, el := range arr.Elements {
		if el.Span.Start < prev || el.Span.End < el.Span.Start || el.Span.End > arr.CloseStart {
			return false
		}
		prev = el.Span.End
	}
	return true
}
