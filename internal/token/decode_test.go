package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecraft/homecraft-cli/internal/model"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeExpiry_Roundtrip(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed := signToken(t, jwt.MapClaims{"exp": exp.Unix(), "sub": "42"})

	millis, err := DecodeExpiry(signed)
	require.NoError(t, err)
	assert.Equal(t, exp.UnixMilli(), millis)
}

func TestDecodeExpiry_MissingClaim(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{"sub": "42"})

	_, err := DecodeExpiry(signed)
	require.ErrorIs(t, err, model.ErrMalformedToken)
}

func TestDecodeExpiry_NotAToken(t *testing.T) {
	_, err := DecodeExpiry("abc123")
	require.ErrorIs(t, err, model.ErrMalformedToken)
}

func TestDecodeExpiry_NoSignatureVerification(t *testing.T) {
	// The client decodes the claim without the signing key.
	exp := time.Now().Add(time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	millis, err := DecodeExpiry(signed)
	require.NoError(t, err)
	assert.Equal(t, exp.UnixMilli(), millis)
}
