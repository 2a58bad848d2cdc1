package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
)

func rewriteFirst(t *testing.T, src string, toWord bool) string {
	t.Helper()
	arr := firstArray(t, src)
	elems, ok := Extract(arr)
	require.True(t, ok)

	var plan RewritePlan
	if toWord {
		plan = PlanWords(elems, []string{"()"})
	} else {
		plan = PlanBrackets(elems, config.QuotesSingle)
	}
	out, ok := Rewrite(arr, plan, src)
	require.True(t, ok)
	return out
}

func TestRewriteToWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "['one', 'two', 'three']\n",
			want:  "%w(one two three)",
		},
		{
			name:  "extra spacing collapses",
			input: "[ 'one' ,   'two' ]\n",
			want:  "%w(one two)",
		},
		{
			name:  "one element per line",
			input: "[\n  'one',\n  'two',\n]\n",
			want:  "%w(\n  one\n  two\n)",
		},
		{
			name:  "blank line kept",
			input: "[\n  'one',\n\n  'two'\n]\n",
			want:  "%w(\n  one\n\n  two\n)",
		},
		{
			name:  "mixed layout",
			input: "['one', 'two',\n     'three']\n",
			want:  "%w(one two\n     three)",
		},
		{
			name:  "leading commas",
			input: "[ 'one'\n, 'two'\n]\n",
			want:  "%w(one\n two\n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteFirst(t, tt.input, true))
		})
	}
}

func TestRewriteToBracket(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "%w(one two)\n",
			want:  "['one', 'two']",
		},
		{
			name:  "padding inside delimiters",
			input: "%w( one  two )\n",
			want:  "['one', 'two']",
		},
		{
			name:  "multi line",
			input: "%w(\n  one\n  two\n)\n",
			want:  "[\n  'one',\n  'two'\n]",
		},
		{
			name:  "escaped space",
			input: "%w(a\\ b c)\n",
			want:  "['a b', 'c']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteFirst(t, tt.input, false))
		})
	}
}

func TestRewriteRejectsMismatchedSpans(t *testing.T) {
	src := "['a', 'b']\n"
	arr := firstArray(t, src)
	elems, ok := Extract(arr)
	require.True(t, ok)
	plan := PlanWords(elems, nil)

	_, ok = Rewrite(arr, plan, src[:4])
	assert.False(t, ok, "source shorter than span")

	short := plan
	short.Fragments = short.Fragments[:1]
	_, ok = Rewrite(arr, short, src)
	assert.False(t, ok, "fragment count mismatch")

	broken := *arr
	broken.Elements = []parser.Element{arr.Elements[1], arr.Elements[0]}
	_, ok = Rewrite(&broken, plan, src)
	assert.False(t, ok, "elements out of order")
}

func TestLineBreak(t *testing.T) {
	tests := []struct {
		gap    string
		want   string
		breaks bool
	}{
		{" ", "", false},
		{", ", "", false},
		{",\n  ", "\n  ", true},
		{",\r\n  ", "\r\n  ", true},
		{"\n\n    ", "\n\n    ", true},
		{"\n, ", "\n ", true},
	}
	for _, tt := range tests {
		got, ok := lineBreak(tt.gap)
		assert.Equal(t, tt.breaks, ok, "lineBreak(%q)", tt.gap)
		assert.Equal(t, tt.want, got, "lineBreak(%q)", tt.gap)
	}
}
