package handling

import (
	"errors"
	"net/http"

	"bcspace_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleError maps a service error onto the matching HTTP response. Known
// domain errors keep their status; anything else is logged and hidden
// behind a 500.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		return gecho.NotFound(w, gecho.WithMessage(msg)).Send()
	case errors.Is(err, lib.ErrConflict):
		return gecho.Conflict(w, gecho.WithMessage(msg)).Send()
	case errors.Is(err, lib.ErrInvalidCredentials), errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		return gecho.Unauthorized(w, gecho.WithMessage(msg)).Send()
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.WithMessage(msg)).Send()
}
