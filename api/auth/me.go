package auth

import (
	"net/http"

	"bcspace_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleMe lets the admin panel restore its session on page load.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Not logged in"), gecho.Send())
		return
	}

	if err := arm.authService.VerifyClaims(claims); err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Session has been revoked"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"id":    claims.Sub,
			"email": claims.Email,
			"role":  claims.Role,
		}),
		gecho.Send(),
	)
}
