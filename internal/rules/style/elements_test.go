package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/wordarray/internal/parser"
)

func firstArray(t *testing.T, src string) *parser.ArrayLiteral {
	t.Helper()
	f, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotEmpty(t, f.Arrays)
	return f.Arrays[0]
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []DecodedElement
		ok    bool
	}{
		{
			name:  "single quoted",
			input: "['one', 'two']\n",
			want:  []DecodedElement{{"one", true}, {"two", true}},
			ok:    true,
		},
		{
			name:  "double quoted escapes",
			input: `["a\tb", "é", "\x41"]` + "\n",
			want:  []DecodedElement{{"a\tb", true}, {"é", true}, {"A", true}},
			ok:    true,
		},
		{
			name:  "character literal",
			input: "[?a, 'b']\n",
			want:  []DecodedElement{{"a", true}, {"b", true}},
			ok:    true,
		},
		{
			name:  "percent strings",
			input: "[%q(a), %Q(b\\n)]\n",
			want:  []DecodedElement{{"a", true}, {"b\n", true}},
			ok:    true,
		},
		{
			name:  "word literal",
			input: `%w(a\ b c\n)` + "\n",
			want:  []DecodedElement{{"a b", true}, {`c\n`, true}},
			ok:    true,
		},
		{
			name:  "interpolating word literal",
			input: `%W(a\tb c)` + "\n",
			want:  []DecodedElement{{"a\tb", true}, {"c", true}},
			ok:    true,
		},
		{
			name:  "invalid utf-8 is extracted but not representable",
			input: `["\xff", 'a']` + "\n",
			want:  []DecodedElement{{"\xff", false}, {"a", true}},
			ok:    true,
		},
		{name: "empty array", input: "[]\n"},
		{name: "empty string", input: "['a', '']\n"},
		{name: "integer", input: "['a', 1]\n"},
		{name: "interpolation", input: "['a', \"#{b}\"]\n"},
		{name: "symbol", input: "['a', :b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(firstArray(t, tt.input))
			assert.Equal(t, tt.ok, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInComplexMatrix(t *testing.T) {
	shape := CompileShape(`\w+`)

	f, err := parser.Parse("[['a', 'b'], ['c d', 'e']]\n[['f', 'g'], ['h', 'i']]\n")
	require.NoError(t, err)

	var rows []*parser.ArrayLiteral
	for _, arr := range f.Arrays {
		if arr.Matrix != nil {
			rows = append(rows, arr)
		}
	}
	require.Len(t, rows, 4)

	assert.True(t, inComplexMatrix(rows[0], shape))
	assert.True(t, inComplexMatrix(rows[1], shape))
	assert.False(t, inComplexMatrix(rows[2], shape))
	assert.False(t, inComplexMatrix(rows[3], shape))
}
