package httpapi

import (
	"errors"
	"net/http"

	"github.com/carlosdaniiel07/identity-service/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps service errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorEmailTaken):
		return http.StatusConflict
	case errors.Is(err, common.ErrorInvalidFileType),
		errors.Is(err, common.ErrorInvalidContentType),
		errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInvalidToken),
		errors.Is(err, common.ErrorInvalidClaims),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError translates err into a status code and JSON body. Internal
// failures are logged with detail but reported with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		msg = common.ErrorInternal.Error()
	}

	s.writeJSON(w, status, errorResponse{Error: msg})
}
