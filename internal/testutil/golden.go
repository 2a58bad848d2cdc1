// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// CorrectFunc autocorrects Ruby source.
type CorrectFunc func(input string) string

// RunGolden runs a single golden file test in the given directory.
// It reads input.rb, applies correct, and compares against expected.rb.
func RunGolden(t *testing.T, dir string, correct CorrectFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, "input.rb")
	expectedPath := filepath.Join(dir, "expected.rb")

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual := correct(string(inputBytes))

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n%s", dir, unified(expected, actual))
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, correct CorrectFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, correct)
		})
	}
}

func unified(expected, actual string) string {
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return "--- expected\n" + expected + "\n--- actual\n" + actual
	}
	return d
}
