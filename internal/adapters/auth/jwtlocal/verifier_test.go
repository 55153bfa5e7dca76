package jwtlocal

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-signing-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestNewVerifierExigeSecret(t *testing.T) {
	_, err := NewVerifier("   ")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestVerifyTokenValido(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerifyRechazaTokenInvalido(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	ctx := context.Background()

	// firmado con otro secret
	token := signToken(t, "otro-secret", jwt.MapClaims{"sub": "user-1"})
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expirado
	token = signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// sin sub
	token = signToken(t, testSecret, jwt.MapClaims{"email": "ana@example.com"})
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// vacío
	_, err = v.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRechazaAlgoritmoNoHS256(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	// alg=none no pasa el filtro de métodos válidos
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
