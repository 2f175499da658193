package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *Issuer {
	return NewIssuer("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.AccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.RefreshToken(7)
	require.NoError(t, err)

	userID, err := issuer.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestTokenFamiliesUseSeparateSecrets(t *testing.T) {
	issuer := testIssuer()

	refresh, err := issuer.RefreshToken(1)
	require.NoError(t, err)

	// A refresh token must never pass as an access token.
	_, err = issuer.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	access, err := issuer.AccessToken(1)
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := testIssuer()
	other := NewIssuer("different-secret", "refresh-secret", 15*time.Minute, time.Hour)

	token, err := issuer.AccessToken(3)
	require.NoError(t, err)

	_, err = other.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewIssuer("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, err := expired.AccessToken(5)
	require.NoError(t, err)

	_, err = testIssuer().VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// The refresh token from the same session is still within its window.
	refresh, err := expired.RefreshToken(5)
	require.NoError(t, err)

	userID, err := testIssuer().VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := testIssuer().VerifyAccess("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = testIssuer().VerifyAccess("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	issuer := testIssuer()

	a, err := issuer.AccessToken(9)
	require.NoError(t, err)
	b, err := issuer.AccessToken(9)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
