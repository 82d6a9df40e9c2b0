package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/carlosdaniiel07/identity-service/internal/common"
	"github.com/carlosdaniiel07/identity-service/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// authMiddleware verifies the bearer token and stores its claims in the
// request context. Handlers behind it can assume the claims set has already
// passed signature and expiry checks.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeError(w, r, common.ErrorInvalidToken)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the verified claims stored by authMiddleware.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
