package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/logger"
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error onto the HTTP surface. Internal causes
// are logged with the authenticated caller attached and never leave the
// process; the client only sees an opaque message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNoContent(err):
		c.Status(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrUpstreamTimeout):
		c.JSON(http.StatusRequestTimeout, ErrorResponse{Error: "Upstream provider timed out."})
	case apperrors.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
