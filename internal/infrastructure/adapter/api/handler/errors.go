package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/fitcore/workout-planner/internal/domain/error"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error kind to its HTTP status and writes the
// standardized error body
func respondError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFound(err):
		statusCode = http.StatusNotFound
		message = "Not found"
	case domainerr.IsForbidden(err):
		statusCode = http.StatusForbidden
		message = "Caller is not the owner"
	case domainerr.IsExists(err):
		statusCode = http.StatusConflict
		message = "Already exists"
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseID parses a uint64 path parameter, writing a 400 response on failure.
// The boolean reports success.
func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid id format",
		})
		return 0, false
	}
	return id, true
}
