package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revokedSet map[string]bool

func (s revokedSet) IsTokenRevoked(token string) bool { return s[token] }

var tokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func sign(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	_, token, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return token
}

func newRouter(revoked revokedSet) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verify(tokenAuth, jwtauth.TokenFromHeader))
	r.Use(AuthRequired(revoked))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.With(RequirePermission(user.PermissionAttendanceExport)).Get("/export", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.With(RequireSupervisor).Get("/supervisor", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func do(h http.Handler, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequired(t *testing.T) {
	employeeToken := sign(t, map[string]interface{}{"employee_id": "emp-1", "role": "employee", "type": "access"})
	revokedToken := sign(t, map[string]interface{}{"employee_id": "emp-2", "role": "employee", "type": "access"})
	wrongType := sign(t, map[string]interface{}{"employee_id": "emp-1", "role": "employee", "type": "refresh"})

	h := newRouter(revokedSet{revokedToken: true})

	assert.Equal(t, http.StatusOK, do(h, "/me", employeeToken))
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", ""))
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", "not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", revokedToken))
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", wrongType))
}

func TestRoleChecks(t *testing.T) {
	employeeToken := sign(t, map[string]interface{}{"employee_id": "emp-1", "role": "employee", "type": "access"})
	supervisorToken := sign(t, map[string]interface{}{"employee_id": "emp-9", "role": "supervisor", "type": "access"})

	h := newRouter(revokedSet{})

	assert.Equal(t, http.StatusForbidden, do(h, "/export", employeeToken))
	assert.Equal(t, http.StatusOK, do(h, "/export", supervisorToken))
	assert.Equal(t, http.StatusForbidden, do(h, "/supervisor", employeeToken))
	assert.Equal(t, http.StatusOK, do(h, "/supervisor", supervisorToken))
}
