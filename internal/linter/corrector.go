package linter

import (
	"sort"
	"strings"
)

// Apply rewrites src with the replacements of every correctable offense
// and returns the corrected text and the number of replacements applied.
//
// Text outside the replaced spans is copied verbatim. When two spans
// overlap, the one starting first wins and the other is left for a later
// pass.
func Apply(src string, offenses []Offense) (string, int) {
	edits := make([]Offense, 0, len(offenses))
	for _, o := range offenses {
		if !o.Correctable || o.Span.Start < 0 || o.Span.End > len(src) || o.Span.Start > o.Span.End {
			continue
		}
		edits = append(edits, o)
	}
	if len(edits) == 0 {
		return src, 0
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Span.Start < edits[j].Span.Start
	})

	var b strings.Builder
	b.Grow(len(src))
	pos, applied := 0, 0
	for _, e := range edits {
		if e.Span.Start < pos {
			continue
		}
		b.WriteString(src[pos:e.Span.Start])
		b.WriteString(e.Replacement)
		pos = e.Span.End
		applied++
	}
	b.WriteString(src[pos:])

	return b.String(), applied
}
