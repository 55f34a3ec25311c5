package gen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIDProducesUniqueIDs(t *testing.T) {
	g := RunID()

	first := g.Next()
	second := g.Next()

	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}

func TestNilGeneratorFallsBackToNilUUID(t *testing.T) {
	var g RunIDGenerator
	assert.Equal(t, uuid.Nil.String(), g.Next())
}
