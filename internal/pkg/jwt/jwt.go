package jwt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
)

var ErrMissingClaims = errors.New("token is missing required claims")

// Claims is what every handler needs to know about the caller.
type Claims struct {
	EmployeeID   string
	EmployeeCode string
	Role         user.Role
}

type Service interface {
	GenerateAccessToken(employeeID string, employeeCode string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string) error
	IsTokenRevoked(token string) bool
	PurgeExpired(now time.Time) int
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64 // token -> exp (unix)
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, employeeCode string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id":   employeeID,
		"employee_code": employeeCode,
		"role":          string(role),
		"type":          "access",
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blacklists token until it would have expired anyway.
func (j *JWTService) RevokeToken(token string) error {
	decoded, err := j.tokenAuth.Decode(token)
	if err != nil {
		return err
	}

	exp := decoded.Expiration().Unix()
	if decoded.Expiration().IsZero() {
		exp = time.Now().Add(24 * time.Hour).Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = exp
	return nil
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PurgeExpired drops revoked tokens that have expired by now and returns how many were dropped.
func (j *JWTService) PurgeExpired(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	purged := 0
	for token, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, token)
			purged++
		}
	}
	return purged
}

// ClaimsFromContext reads the verified token placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	employeeID, _ := claims["employee_id"].(string)
	employeeCode, _ := claims["employee_code"].(string)
	role, _ := claims["role"].(string)
	if employeeID == "" || role == "" {
		return Claims{}, ErrMissingClaims
	}

	return Claims{
		EmployeeID:   employeeID,
		EmployeeCode: employeeCode,
		Role:         user.Role(role),
	}, nil
}
