package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"

func TestSignAndVerify(t *testing.T) {
	signed, err := Sign(testSecret, "user-123", "admin", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(signed, ".")), "compact JWT has three segments")

	claims, err := Verify(testSecret, signed)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := Sign(testSecret, "user-123", "admin", time.Hour)
	require.NoError(t, err)

	_, err = Verify("0000000000000000000000000000000000000000000000000000000000000000", signed)
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	signed, err := Sign(testSecret, "user-123", "admin", -time.Hour)
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.Error(t, err)
}

func TestVerifyTampered(t *testing.T) {
	signed, err := Sign(testSecret, "user-123", "admin", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJyb2xlIjoicm9vdCJ9." + parts[2]

	_, err = Verify(testSecret, tampered)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify(testSecret, "not-a-token")
	assert.Error(t, err)
}
