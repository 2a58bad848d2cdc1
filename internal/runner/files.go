package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// rubyGlob selects the files inspected when a directory is given.
const rubyGlob = "**/*.rb"

// expandPaths replaces directories with the Ruby files below them and
// drops every path matching an exclude pattern. Explicit file arguments
// are kept even when they are not .rb files.
func expandPaths(args, exclude []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files surface as read errors for that file.
			if !excluded(arg, "", exclude) {
				out = append(out, arg)
			}
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(arg), rubyGlob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", arg, err)
		}
		slices.Sort(matches)
		for _, rel := range matches {
			if excluded(arg, rel, exclude) {
				continue
			}
			out = append(out, filepath.Join(arg, filepath.FromSlash(rel)))
		}
	}
	return out, nil
}

// excluded reports whether a file matches any exclude pattern, either by
// its path relative to the expanded directory or by its full path.
func excluded(root, rel string, patterns []string) bool {
	full := filepath.ToSlash(filepath.Join(root, filepath.FromSlash(rel)))
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if rel != "" {
			if ok, _ := doublestar.Match(p, rel); ok {
				return true
			}
		}
		if ok, _ := doublestar.Match(p, full); ok {
			return true
		}
	}
	return false
}

// unifiedDiff returns the corrections to path as a unified diff, or an
// empty string when nothing changed.
func unifiedDiff(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", path, err)
	}
	return d, nil
}
