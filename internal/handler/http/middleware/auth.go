package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/response"
	"github.com/raminfosys/erp-backend-go/internal/pkg/jwt"
)

// TokenFromQuery reads the token from the "token" query parameter. Browsers
// cannot set headers on an EventSource.
func TokenFromQuery(r *http.Request) string {
	return r.URL.Query().Get("token")
}

// TokenFromRequest returns the raw token from the Authorization header,
// falling back to the query parameter.
func TokenFromRequest(r *http.Request) string {
	if token := jwtauth.TokenFromHeader(r); token != "" {
		return token
	}
	return TokenFromQuery(r)
}

// AuthRequired rejects requests without a verified, unrevoked access token.
// It expects jwtauth.Verifier (or jwtauth.Verify) to run first.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
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

			if jwtService.IsTokenRevoked(TokenFromRequest(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
