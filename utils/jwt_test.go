package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("operator-7", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-7", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("operator-7", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestIDs(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())

	next := NewSequenceIDs("slot")
	assert.Equal(t, "slot-1", next())
	assert.Equal(t, "slot-2", next())
}
