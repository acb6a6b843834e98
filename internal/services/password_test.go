package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_UniquePerCall(t *testing.T) {
	first, err := HashPassword("pw123456")
	require.NoError(t, err)
	second, err := HashPassword("pw123456")
	require.NoError(t, err)

	// Fresh salt per call: same password, different hashes
	assert.NotEqual(t, first, second)

	assert.NoError(t, VerifyPassword(first, "pw123456"))
	assert.NoError(t, VerifyPassword(second, "pw123456"))
}

func TestHashPassword_Encoding(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.Len(t, strings.Split(hash, "$"), 6)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)

	err = VerifyPassword(hash, "wrong-password")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=banana$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",
	}

	for _, encoded := range cases {
		err := VerifyPassword(encoded, "pw123456")
		assert.ErrorIs(t, err, ErrInvalidHash, "hash %q", encoded)
		assert.NotErrorIs(t, err, ErrPasswordMismatch, "hash %q", encoded)
	}
}
