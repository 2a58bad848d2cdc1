package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/parser"
)

type fakeRule struct {
	name     string
	offenses []Offense
}

func (r *fakeRule) Name() string { return r.name }

func (r *fakeRule) Check(*parser.File, *config.Config) []Offense {
	return r.offenses
}

func TestRunSortsAndFillsPath(t *testing.T) {
	file := &parser.File{Path: "a.rb"}
	rules := []Rule{
		&fakeRule{name: "second", offenses: []Offense{{Rule: "second", Span: parser.Span{Start: 10, End: 12}}}},
		&fakeRule{name: "first", offenses: []Offense{{Rule: "first", Span: parser.Span{Start: 1, End: 3}, Path: "other.rb"}}},
	}

	got := Run(file, config.DefaultConfig(), rules)

	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Rule)
	assert.Equal(t, "other.rb", got[0].Path)
	assert.Equal(t, "second", got[1].Rule)
	assert.Equal(t, "a.rb", got[1].Path)
}

func TestRunNoRules(t *testing.T) {
	assert.Empty(t, Run(&parser.File{}, config.DefaultConfig(), nil))
}
