package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/wordarray/internal/advisor"
)

func TestNewInstantiatesRegisteredRules(t *testing.T) {
	adv := advisor.New()

	first := New(adv)
	second := New(adv)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	assert.Equal(t, "word_array", first[0].Name())
	assert.NotSame(t, first[0], second[0])
}
