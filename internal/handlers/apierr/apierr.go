// Package apierr maps domain errors to local api responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/pkg/utils"
	"go.uber.org/zap"
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its status code. Unexpected errors are logged and
// hidden from the caller.
func Respond(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
