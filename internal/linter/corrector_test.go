package linter

import (
	"testing"

	"github.com/donaldgifford/wordarray/internal/parser"
)

func offense(start, end int, replacement string) Offense {
	return Offense{
		Span:        parser.Span{Start: start, End: end},
		Replacement: replacement,
		Correctable: true,
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		offenses []Offense
		want     string
		applied  int
	}{
		{
			name: "no offenses",
			src:  "x = ['a', 'b']\n",
			want: "x = ['a', 'b']\n",
		},
		{
			name:     "single replacement",
			src:      "x = ['a', 'b'] # keep\n",
			offenses: []Offense{offense(4, 14, "%w(a b)")},
			want:     "x = %w(a b) # keep\n",
			applied:  1,
		},
		{
			name: "multiple replacements out of order",
			src:  "a = ['x', 'y']\nb = ['z', 'w']\n",
			offenses: []Offense{
				offense(19, 29, "%w(z w)"),
				offense(4, 14, "%w(x y)"),
			},
			want:    "a = %w(x y)\nb = %w(z w)\n",
			applied: 2,
		},
		{
			name: "overlapping spans keep the first",
			src:  "0123456789",
			offenses: []Offense{
				offense(2, 6, "A"),
				offense(4, 8, "B"),
			},
			want:    "01A6789",
			applied: 1,
		},
		{
			name: "not correctable is skipped",
			src:  "abc",
			offenses: []Offense{
				{Span: parser.Span{Start: 0, End: 1}, Replacement: "X"},
			},
			want: "abc",
		},
		{
			name:     "out of range span is skipped",
			src:      "abc",
			offenses: []Offense{offense(2, 10, "X")},
			want:     "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := Apply(tt.src, tt.offenses)
			if got != tt.want {
				t.Errorf("want: %q, got: %q", tt.want, got)
			}
			if applied != tt.applied {
				t.Errorf("applied: want %d, got %d", tt.applied, applied)
			}
		})
	}
}
