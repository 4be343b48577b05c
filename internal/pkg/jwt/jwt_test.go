package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

var issuedAt = time.Date(2025, 9, 26, 3, 0, 0, 0, time.UTC)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc, err := NewJWTService(testSecret, "15m", timezone.Fixed(issuedAt))
	require.NoError(t, err)

	token, expiresIn, err := svc.GenerateAccessToken("u1", "Jiwoo", user.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "Jiwoo", claims["name"])
	assert.Equal(t, "member", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
	assert.Equal(t, issuedAt.Add(15*time.Minute), decoded.Expiration().UTC())
}

func TestGenerateAccessToken_ExpiredAfterTTL(t *testing.T) {
	issuer, err := NewJWTService(testSecret, "15m", timezone.Fixed(issuedAt))
	require.NoError(t, err)
	token, _, err := issuer.GenerateAccessToken("u1", "Jiwoo", user.RoleMember)
	require.NoError(t, err)

	later, err := NewJWTService(testSecret, "15m", timezone.Fixed(issuedAt.Add(time.Hour)))
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(later.JWTAuth(), token)
	assert.Error(t, err)
}

func TestGenerateAccessToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testSecret, "15m", timezone.Fixed(issuedAt))
	require.NoError(t, err)
	token, _, err := issuer.GenerateAccessToken("u1", "Jiwoo", user.RoleAdmin)
	require.NoError(t, err)

	other, err := NewJWTService("another-secret", "15m", timezone.Fixed(issuedAt))
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), token)
	assert.Error(t, err)
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService(testSecret, "fifteen minutes", timezone.SystemClock)
	assert.Error(t, err)
}
