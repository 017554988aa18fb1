package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// Offset defaults to 0 and limit to defaultLimit; limit cannot exceed maxLimit.
// Errors wrap ErrInvalidInput.
func ParsePagination(c *gin.Context, defaultLimit, maxLimit int) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"invalid offset parameter: must be a non-negative integer",
		)
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("invalid limit parameter: must be between 1 and %d", maxLimit),
		)
	}

	return offset, limit, nil
}
