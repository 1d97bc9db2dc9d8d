package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/auth"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
)

// TokenRevocation reports whether a token was logged out.
type TokenRevocation interface {
	IsTokenRevoked(token string) bool
}

// AuthRequired rejects requests without a verified, unrevoked access token.
// It must run after jwtauth.Verifier.
func AuthRequired(revocation TokenRevocation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if revocation.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			if _, err := jwt.ClaimsFromContext(r.Context()); err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
