package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/412299-Rodriguez/club-appointments/internal/backend"
)

// RespondBackendError maps a failed backend call onto the response. A
// rejection the backend produced is surfaced unchanged, status and
// message both; anything else (network failure, timeout) is a 502.
func RespondBackendError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, ErrorResponse{Error: apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "booking service unavailable"})
}
