package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTripsClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "PLA004", user.RoleSupervisor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(8*time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, "PLA004", claims.EmployeeCode)
	assert.Equal(t, user.RoleSupervisor, claims.Role)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "eight hours")

	_, _, err := svc.GenerateAccessToken("emp-1", "PLA004", user.RoleEmployee)
	assert.Error(t, err)
}

func TestClaimsFromContext_NoToken(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.Error(t, err)
}

func TestRevokeToken_AndPurge(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "PLA004", user.RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	require.NoError(t, svc.RevokeToken(token))
	assert.True(t, svc.IsTokenRevoked(token))

	assert.Equal(t, 0, svc.PurgeExpired(time.Now()))
	assert.True(t, svc.IsTokenRevoked(token))

	assert.Equal(t, 1, svc.PurgeExpired(time.Unix(expiresAt, 0).Add(time.Second)))
	assert.False(t, svc.IsTokenRevoked(token))
}

func TestRevokeToken_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	assert.Error(t, svc.RevokeToken("not-a-token"))
}
