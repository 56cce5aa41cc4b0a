package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   uint
		want       int
	}{
		{"Exact division", 20, 10, 2},
		{"With remainder", 21, 10, 3},
		{"Less than one page", 3, 10, 1},
		{"No items", 0, 10, 1},
		{"Zero page size falls back to default", 25, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotalPage(tt.totalItems, tt.pageSize); got != tt.want {
				t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestParsePageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     uint
		wantPageSize uint
	}{
		{"Defaults", "", constant.DefaultPage, constant.DefaultPageSize},
		{"Explicit values", "?page=3&limit=25", 3, 25},
		{"Limit capped", "?page=1&limit=1000", 1, constant.MaxPageSize},
		{"Malformed values fall back", "?page=abc&limit=-5", constant.DefaultPage, constant.DefaultPageSize},
		{"Zero values fall back", "?page=0&limit=0", constant.DefaultPage, constant.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/"+tt.query, nil)

			page, pageSize := ParsePageQuery(ctx)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("ParsePageQuery() = (%d, %d), want (%d, %d)", page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)

	if p.CurrentPage != 2 {
		t.Errorf("Expected current page 2, got %d", p.CurrentPage)
	}
	if p.TotalPages != 4 {
		t.Errorf("Expected 4 total pages, got %d", p.TotalPages)
	}
	if p.TotalItems != 35 {
		t.Errorf("Expected 35 total items, got %d", p.TotalItems)
	}
	if p.ItemsPerPage != 10 {
		t.Errorf("Expected 10 items per page, got %d", p.ItemsPerPage)
	}
}
