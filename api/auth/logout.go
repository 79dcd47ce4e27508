package auth

import (
	"net/http"

	"bcspace_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r)
	if err != nil {
		gecho.Success(w,
			gecho.WithMessage("No access token found"),
			gecho.Send(),
		)
		return
	}

	claims, err := lib.ParseToken(accessToken, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		arm.logger.Error("Failed to parse access token during logout", gecho.Field("error", err))
		lib.ClearCookie(lib.AccessCookieName, w)
		gecho.Success(w,
			gecho.WithMessage("Invalid access token"),
			gecho.Send(),
		)
		return
	}

	if err = arm.authService.Logout(claims); err != nil {
		arm.logger.Error("Failed to blacklist access token during logout", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to logout"),
			gecho.Send(),
		)
		return
	}

	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
