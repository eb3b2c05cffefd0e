package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher(t *testing.T) {
	h := NewSHA256Hasher("salt")

	digest, err := h.Hash("qwerty123")
	require.NoError(t, err)
	assert.NotEqual(t, "qwerty123", digest)

	again, err := h.Hash("qwerty123")
	require.NoError(t, err)
	assert.Equal(t, digest, again)

	other := NewSHA256Hasher("pepper")
	otherDigest, err := other.Hash("qwerty123")
	require.NoError(t, err)
	assert.NotEqual(t, digest, otherDigest)
}

func TestSHA256Hasher_Verify(t *testing.T) {
	h := NewSHA256Hasher("salt")

	digest, err := h.Hash("qwerty123")
	require.NoError(t, err)

	assert.True(t, h.Verify("qwerty123", digest))
	assert.False(t, h.Verify("qwerty124", digest))
	assert.False(t, h.Verify("qwerty123", digest+"0"))
}
