package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetIndicatorID(ctx *gin.Context) (uint, error) {
	idStr := ctx.Param("id")

	if idStr == "" {
		return 0, errors.New("Indicator ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Indicator ID")
	}

	return uint(id), nil
}

// GetPagination reads skip/limit query parameters, tolerating absence.
func GetPagination(ctx *gin.Context, defaultLimit int) (int, int) {
	skip := 0
	limit := defaultLimit

	if raw := ctx.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return skip, limit
}
