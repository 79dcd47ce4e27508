package middleware

import (
	"context"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing session data in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// AdminAuthMiddleware protects routes to authenticated admins. The whole
// panel is admin-only, so there is no separate user tier.
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		if err := mw.authService.VerifyClaims(claims); err != nil {
			mw.logger.Warn("Revoked token presented", gecho.Field("jti", claims.Jti))
			gecho.Unauthorized(w, gecho.WithMessage("Session has been revoked"), gecho.Send())
			return
		}

		if claims.Role != "admin" {
			mw.logger.Warn("Non-admin attempted to access admin route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role))
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
