package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/rona-hr/rona-backend-go/internal/domain/auth"
	"github.com/rona-hr/rona-backend-go/internal/domain/user"
)

const (
	TokenTypeAccess = "access"
	TokenTypeStream = "stream"

	streamTokenTTL = 5 * time.Minute
)

// StreamClaims identifies who opened a clock stream.
type StreamClaims struct {
	UserID    string
	CompanyID string
}

type Service interface {
	GenerateAccessToken(userID string, email string, companyID *string, role user.Role) (token string, expiresAt int64, err error)
	GenerateStreamToken(userID string, companyID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (StreamClaims, error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64 // token -> exp (unix)
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) *JWTService {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

// GenerateAccessToken issues the bearer token the portals send on every request.
func (j *JWTService) GenerateAccessToken(userID string, email string, companyID *string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"company_id": returnValueOrNil(companyID),
		"role":       string(role),
		"type":       TokenTypeAccess,
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateStreamToken generates a short-lived token for EventSource connections,
// which cannot send an Authorization header.
func (j *JWTService) GenerateStreamToken(userID string, companyID string) (token string, expiresIn int, err error) {
	expiresAt := j.now().Add(streamTokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"type":       TokenTypeStream,
		"exp":        expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(streamTokenTTL.Seconds()), nil
}

// ValidateStreamToken validates a stream token and returns its claims
func (j *JWTService) ValidateStreamToken(tokenString string) (StreamClaims, error) {
	if j.IsTokenRevoked(tokenString) {
		return StreamClaims{}, auth.ErrTokenRevoked
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return StreamClaims{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeStream {
		return StreamClaims{}, auth.ErrInvalidToken
	}

	userIDVal, _ := token.Get("user_id")
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return StreamClaims{}, auth.ErrInvalidToken
	}

	companyIDVal, _ := token.Get("company_id")
	companyID, _ := companyIDVal.(string)

	return StreamClaims{UserID: userID, CompanyID: companyID}, nil
}

// RevokeToken blocks token until it would have expired anyway. Entries past
// their expiry are dropped on every call.
func (j *JWTService) RevokeToken(token string) {
	now := j.now()
	expiresAt := now.Add(j.accessTokenExpirationTime).Unix()
	if parsed, err := j.tokenAuth.Decode(token); err == nil && !parsed.Expiration().IsZero() {
		expiresAt = parsed.Expiration().Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	for revoked, exp := range j.revokedTokens {
		if exp < now.Unix() {
			delete(j.revokedTokens, revoked)
		}
	}
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
