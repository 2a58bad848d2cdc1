package style

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// matchTimeout bounds a single word match so that a pathological
// user-supplied pattern cannot stall a run.
const matchTimeout = 100 * time.Millisecond

// shapeCacheSize is the number of distinct word_regex patterns kept
// compiled at once.
const shapeCacheSize = 32

var shapeCache *lru.Cache[string, *ShapeMatcher]

func init() {
	c, err := lru.New[string, *ShapeMatcher](shapeCacheSize)
	if err != nil {
		panic(err)
	}
	shapeCache = c
}

// ShapeMatcher decides whether a decoded word may be written bare inside a
// word literal. A matcher built from an invalid pattern never matches.
type ShapeMatcher struct {
	pattern string
	re      *regexp2.Regexp
	err     error
}

// CompileShape returns the matcher for pattern, compiling it on first use.
// The pattern must match the whole word.
func CompileShape(pattern string) *ShapeMatcher {
	if m, ok := shapeCache.Get(pattern); ok {
		return m
	}
	m := compileShape(pattern)
	shapeCache.Add(pattern, m)
	return m
}

func compileShape(pattern string) *ShapeMatcher {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		return &ShapeMatcher{
			pattern: pattern,
			err:     fmt.Errorf("compiling word_regex %q: %w", pattern, err),
		}
	}
	re.MatchTimeout = matchTimeout
	return &ShapeMatcher{pattern: pattern, re: re}
}

// Matches reports whether s matches the pattern in full. Compile errors and
// match timeouts count as no match.
func (m *ShapeMatcher) Matches(s string) bool {
	if m == nil || m.re == nil {
		return false
	}
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

// Err returns the compile error of the pattern, if any.
func (m *ShapeMatcher) Err() error {
	if m == nil {
		return nil
	}
	return m.err
}

// Pattern returns the pattern the matcher was built from.
func (m *ShapeMatcher) Pattern() string {
	return m.pattern
}
