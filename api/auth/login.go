package auth

import (
	"net/http"
	"time"

	"bcspace_server/lib"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract login body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	token, user, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		// Same message for unknown email and wrong password.
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	lib.SetCookie(lib.AccessCookieName, token, time.Now().Add(arm.cfg.Auth.AccessTokenExpiry), w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{
			"id":            user.ID,
			"email":         user.Email,
			"role":          user.Role,
			"last_login_at": user.LastLoginAt,
		}),
		gecho.Send(),
	)
}
