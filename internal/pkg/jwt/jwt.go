package jwt

import (
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	// GenerateAccessToken signs an access token and returns its lifetime in seconds
	GenerateAccessToken(userID string, name string, role user.Role) (token string, expiresIn int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenTTL time.Duration
	tokenAuth      *jwtauth.JWTAuth
	clock          timezone.Clock
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService parses accessTokenExpirationTime as a Go duration such as "15m".
func NewJWTService(secretKey string, accessTokenExpirationTime string, clock timezone.Clock) (Service, error) {
	ttl, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenTTL: ttl,
		clock:          clock,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil,
			jwt.WithAcceptableSkew(30*time.Second),
			jwt.WithClock(jwt.ClockFunc(clock)),
		),
	}, nil
}

func (j *JWTService) GenerateAccessToken(userID string, name string, role user.Role) (token string, expiresIn int64, err error) {
	now := j.clock()
	expiresAt := now.Add(j.accessTokenTTL)

	claims := map[string]interface{}{
		"user_id": userID,
		"name":    name,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, int64(j.accessTokenTTL.Seconds()), err
}
