package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Offset int
	Limit  int
}

// GetPaginationParams extracts and validates pagination parameters from
// the request. Negative or unparseable values fall back to the defaults;
// there is no upper bound on limit.
func GetPaginationParams(c *gin.Context) PaginationParams {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(constants.DefaultOffset)))
	if err != nil || offset < 0 {
		offset = constants.DefaultOffset
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))
	if err != nil || limit <= 0 {
		limit = constants.DefaultLimit
	}

	return PaginationParams{
		Offset: offset,
		Limit:  limit,
	}
}
