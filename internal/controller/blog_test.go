package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

func TestCreateBlogRejectsInvalidContentBlock(t *testing.T) {
	c := newTestController(t)

	tests := []struct {
		name    string
		content []gin.H
	}{
		{"Image block without url", []gin.H{{"type": "image"}}},
		{"Paragraph without text", []gin.H{{"type": "paragraph"}}},
		{"Unknown block type", []gin.H{{"type": "video", "text": "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = newJSONRequest(t, http.MethodPost, gin.H{
				"title":   "Xu hướng nội thất 2026",
				"content": tt.content,
			})

			c.Blog.CreateBlog(ctx)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestCreateBlogRejectsUnsluggableTitle(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = newJSONRequest(t, http.MethodPost, gin.H{
		"title": "!!!",
	})

	c.Blog.CreateBlog(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateBlogRejectsDuplicateSlug(t *testing.T) {
	c, app := newDBTestController(t)
	bg := context.Background()

	suffix, err := util.GenerateNChar(8)
	if err != nil {
		t.Fatal(err)
	}
	title := "Duplicate title check " + suffix
	slug := util.Slugify(title)

	if _, err := app.Repository.Blog.Create(bg, nil, &model.Blog{
		Title:  title,
		Slug:   slug,
		Status: constant.BlogStatusActive,
	}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = app.Repository.Blog.DeleteBySlug(bg, nil, slug)
	})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = newJSONRequest(t, http.MethodPost, gin.H{
		"title": strings.ToUpper(title[:1]) + title[1:],
	})

	c.Blog.CreateBlog(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

// An active blog is first deactivated; only a second delete removes it.
func TestDeleteBlogBySlugTwoPhase(t *testing.T) {
	c, app := newDBTestController(t)
	bg := context.Background()

	suffix, err := util.GenerateNChar(8)
	if err != nil {
		t.Fatal(err)
	}
	slug := util.Slugify("Two phase delete " + suffix)

	if _, err := app.Repository.Blog.Create(bg, nil, &model.Blog{
		Title:  "Two phase delete",
		Slug:   slug,
		Status: constant.BlogStatusActive,
	}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = app.Repository.Blog.DeleteBySlug(bg, nil, slug)
	})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Params = gin.Params{{Key: "slug", Value: slug}}
	ctx.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	c.Blog.DeleteBlogBySlug(ctx)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected first delete to return %d, got %d", http.StatusOK, w.Code)
	}

	blog, err := app.Repository.Blog.GetBySlug(bg, nil, slug)
	if err != nil {
		t.Fatalf("Expected blog to survive the first delete, got: %v", err)
	}
	if blog.Status != constant.BlogStatusInactive {
		t.Fatalf("Expected status %s after first delete, got %s", constant.BlogStatusInactive, blog.Status)
	}

	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Params = gin.Params{{Key: "slug", Value: slug}}
	ctx2.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	c.Blog.DeleteBlogBySlug(ctx2)

	if w2.Code != http.StatusOK {
		t.Fatalf("Expected second delete to return %d, got %d", http.StatusOK, w2.Code)
	}

	if _, err := app.Repository.Blog.GetBySlug(bg, nil, slug); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected blog to be gone after the second delete, got: %v", err)
	}
}
