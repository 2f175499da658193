package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired indicates the token's expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a malformed token or a signature mismatch.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the authenticated user's id inside both token families.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies the two session token families: short-lived
// access tokens and long-lived refresh tokens, each signed with its own
// secret. Secrets are fixed at construction for the process lifetime.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// AccessTTL returns the access token lifetime, used for cookie max-age.
func (i *Issuer) AccessTTL() time.Duration { return i.accessTTL }

// RefreshTTL returns the refresh token lifetime, used for cookie max-age.
func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

// AccessToken issues a signed access token for the given user.
func (i *Issuer) AccessToken(userID int64) (string, error) {
	return sign(i.accessSecret, userID, i.accessTTL)
}

// RefreshToken issues a signed refresh token for the given user.
func (i *Issuer) RefreshToken(userID int64) (string, error) {
	return sign(i.refreshSecret, userID, i.refreshTTL)
}

// VerifyAccess validates an access token and returns the embedded user id.
func (i *Issuer) VerifyAccess(token string) (int64, error) {
	return verify(i.accessSecret, token)
}

// VerifyRefresh validates a refresh token and returns the embedded user id.
func (i *Issuer) VerifyRefresh(token string) (int64, error) {
	return verify(i.refreshSecret, token)
}

func sign(secret []byte, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func verify(secret []byte, tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
