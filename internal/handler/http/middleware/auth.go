package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rona-hr/rona-backend-go/internal/domain/auth"
	"github.com/rona-hr/rona-backend-go/internal/handler/http/response"
)

// RevocationChecker reports whether a bearer token was revoked before expiry.
type RevocationChecker interface {
	IsTokenRevoked(token string) bool
}

func AuthRequired(revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
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

			if revocations != nil && revocations.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
