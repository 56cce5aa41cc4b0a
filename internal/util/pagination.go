package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
)

// Pagination is the summary block returned alongside every paginated list.
type Pagination struct {
	CurrentPage  uint  `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage uint  `json:"itemsPerPage"`
}

func NewPagination(page, pageSize uint, totalItems int64) Pagination {
	return Pagination{
		CurrentPage:  page,
		TotalPages:   CalculateTotalPage(totalItems, pageSize),
		TotalItems:   totalItems,
		ItemsPerPage: pageSize,
	}
}

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}

// ParsePageQuery reads page and limit query parameters, falling back to
// defaults on absent or malformed values and capping limit at MaxPageSize.
func ParsePageQuery(ctx *gin.Context) (uint, uint) {
	page := constant.DefaultPage
	pageSize := constant.DefaultPageSize

	if raw := ctx.Query("page"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			page = uint(parsed)
		}
	}

	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			pageSize = uint(parsed)
		}
	}

	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}

	return page, pageSize
}
