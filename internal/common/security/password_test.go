package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rS3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rS3cret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rS3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("Sup3rS3cret!", "not-a-hash"))
}
