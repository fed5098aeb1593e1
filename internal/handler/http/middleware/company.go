package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rona-hr/rona-backend-go/internal/domain/user"
	"github.com/rona-hr/rona-backend-go/internal/handler/http/response"
)

// RequireCompany rejects tokens that are not bound to a company yet.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrCompanyIDRequired)
			return
		}

		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			response.HandleError(w, user.ErrCompanyIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
