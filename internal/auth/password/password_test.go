package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashSaltsPerCall(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw123456", first))
	assert.True(t, hasher.Verify("pw123456", second))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("pw1234567", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestVerifyMalformedDigestIsFalse(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("pw123456", ""))
	assert.False(t, hasher.Verify("pw123456", "not-a-bcrypt-digest"))
}

func TestNewHasherClampsCost(t *testing.T) {
	digest, err := NewHasher(999).Hash("pw123456")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}
