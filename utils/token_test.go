package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, issued, err := issuer.Issue("guide@example.com", "guide")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "guide@example.com", claims.Subject)
	assert.Equal(t, "guide", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Issue("guide@example.com", "guide")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, _, err := NewTokenIssuer("other", time.Hour).Issue("guide@example.com", "guide")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = NewTokenIssuer("secret", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClaimsFromMap(t *testing.T) {
	exp := time.Now().Add(time.Minute).Unix()
	claims, err := ClaimsFromMap(jwt.MapClaims{
		"sub":  "t@example.com",
		"role": "tourist",
		"jti":  "abc",
		"exp":  float64(exp),
	})
	require.NoError(t, err)
	assert.Equal(t, "t@example.com", claims.Subject)
	assert.Equal(t, "abc", claims.ID)
	assert.Equal(t, exp, claims.ExpiresAt.Unix())
	assert.Greater(t, claims.Remaining(time.Now()), time.Duration(0))

	_, err = ClaimsFromMap(jwt.MapClaims{"role": "tourist"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))

	_, err = HashPassword("")
	assert.Error(t, err)
}
