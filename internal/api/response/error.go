package response

import (
	"errors"
	"log/slog"
	"net/http"

	"gameshelf/backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// FromError is the single classifier mapping domain errors onto the
// HTTP surface: validation and uniqueness failures answer 400, a
// malformed id answers 400, a missing record answers 404, and anything
// else is an infrastructure fault answering 500. The 500 message stays
// generic unless development mode is on.
func FromError(c *gin.Context, development bool, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		ValidationErrorResponse(c, verr.Violations)
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrDuplicateTitle),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGameNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		message := "internal server error"
		if development {
			message = err.Error()
		}
		ErrorResponse(c, http.StatusInternalServerError, message)
	}
}
