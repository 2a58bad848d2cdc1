package parser

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		"['one', 'two']\n",
		"%w(one two)\n",
		"%W(a\\n #{b})\n",
		"x = [\n  'a', # c\n  'b'\n]\n",
		"foo ['a'] do\nend\n",
		"[['a'], %w(b)]\n",
		"# encoding: euc-jp\n[?a]\n",
		"[",
		"%w(",
		"",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		file, err := Parse(input)
		if err != nil {
			return
		}
		for _, arr := range file.Arrays {
			if arr.Span.Start < 0 || arr.Span.End > len(input) || arr.Span.Start > arr.Span.End {
				t.Fatalf("array span out of range: %+v", arr.Span)
			}
			for _, el := range arr.Elements {
				if el.Span.Start < arr.Span.Start || el.Span.End > arr.Span.End {
					t.Fatalf("element span %+v escapes array %+v", el.Span, arr.Span)
				}
			}
		}
	})
}
