package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/wordarray/internal/config"
)

var allStyles = []string{config.StyleWord, config.StyleBracket}

func classify(t *testing.T, src, style string, minSize int) Verdict {
	t.Helper()
	arr := firstArray(t, src)
	elems, ok := Extract(arr)
	return Classify(elems, ok, arr, Options{
		Style:      style,
		MinSize:    minSize,
		Shape:      CompileShape(config.DefaultWordRegex),
		EncodingOK: true,
	})
}

func TestClassifyBelowMinSizeNeverOffends(t *testing.T) {
	inputs := []string{
		"['a', 'b']\n",
		"%w(a b)\n",
		"%w(a\\ b c)\n",
	}
	for _, in := range inputs {
		for _, style := range allStyles {
			assert.Equal(t, NoOffense, classify(t, in, style, 3), "%s under %s", in, style)
		}
	}
}

func TestClassifyEnforcedStyleIsIdempotent(t *testing.T) {
	assert.Equal(t, NoOffense, classify(t, "%w(one two three)\n", config.StyleWord, 0))
	assert.Equal(t, NoOffense, classify(t, "%W(one two\\n)\n", config.StyleWord, 0))
	assert.Equal(t, NoOffense, classify(t, "['one', 'two', 'three']\n", config.StyleBracket, 0))
}

func TestClassifyVerdicts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		style string
		want  Verdict
	}{
		{"bracket words to word", "['one', 'two', 'three']\n", config.StyleWord, OffenseToWord},
		{"word literal to bracket", "%w(one two)\n", config.StyleBracket, OffenseToBracket},
		{"complex content", "['one', 'two.three']\n", config.StyleWord, NoOffense},
		{"space in value", "['one two', 'three']\n", config.StyleWord, NoOffense},
		{"word with escaped space needs brackets", "%w(a\\ b c)\n", config.StyleWord, OffenseToBracket},
		{"inline comment", "['one', # note\n 'two']\n", config.StyleWord, NoOffense},
		{"ambiguous block call", "foo ['one', 'two'] do\nend\n", config.StyleWord, NoOffense},
		{"parenthesized block call", "foo(['one', 'two']) do\nend\n", config.StyleWord, OffenseToWord},
		{"invalid utf-8", "[\"\\xff\", 'a']\n", config.StyleWord, NoOffense},
		{"empty", "[]\n", config.StyleWord, NoOffense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.input, tt.style, 0))
		})
	}
}

func TestClassifyIneligibleElementNeverOffends(t *testing.T) {
	inputs := []string{
		"['a', 1, 'b']\n",
		"['a', b, 'c']\n",
		"['a', \"#{b}\"]\n",
		"['a', :b]\n",
		"['a', nil]\n",
		"%W(a #{b})\n",
	}
	for _, in := range inputs {
		for _, style := range allStyles {
			for _, minSize := range []int{0, 2} {
				assert.Equal(t, NoOffense, classify(t, in, style, minSize), "%s under %s", in, style)
			}
		}
	}
}

func TestClassifyEncoding(t *testing.T) {
	arr := firstArray(t, "['a', 'b']\n")
	elems, ok := Extract(arr)
	opts := Options{
		Style:   config.StyleWord,
		Shape:   CompileShape(config.DefaultWordRegex),
		MinSize: 0,
	}
	assert.Equal(t, NoOffense, Classify(elems, ok, arr, opts))

	opts.EncodingOK = true
	assert.Equal(t, OffenseToWord, Classify(elems, ok, arr, opts))
}

func TestClassifyInvalidShapeFailsClosed(t *testing.T) {
	arr := firstArray(t, "['a', 'b']\n")
	elems, ok := Extract(arr)
	opts := Options{
		Style:      config.StyleWord,
		Shape:      CompileShape(`((`),
		EncodingOK: true,
	}
	assert.Equal(t, NoOffense, Classify(elems, ok, arr, opts))
}

func TestEncodingCompatible(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"utf-8", true},
		{"UTF-8", true},
		{"utf-8-unix", true},
		{"us-ascii", true},
		{"euc-jp", false},
		{"Shift_JIS", false},
		{"iso-8859-1", false},
		{"no-such-encoding", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodingCompatible(tt.name))
		})
	}
}
