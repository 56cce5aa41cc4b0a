package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

type BlogController struct {
	*baseController
}

func (bc BlogController) CreateBlog(ctx *gin.Context) {
	type Request struct {
		Title       string               `json:"title" form:"title" binding:"required,strNotEmpty,cmax=200"`
		Content     []model.ContentBlock `json:"content" form:"content"`
		Image       string               `json:"image" form:"image"`
		Status      constant.BlogStatus  `json:"status" form:"status" binding:"omitempty,oneof=active inactive draft"`
		IsHighlight bool                 `json:"isHighlight" form:"isHighlight"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	for _, block := range body.Content {
		if err := block.Validate(); err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid content block", util.GenerateErrorMessages(err, "content"))
			return
		}
	}

	slug := util.Slugify(body.Title)
	if slug == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid blog title", util.GenerateErrorMessages(errors.New("title does not produce a valid slug"), "title"))
		return
	}

	if _, err := bc.app.Repository.Blog.GetBySlug(ctx, nil, slug); err == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Blog already exists", util.GenerateErrorMessages(errors.New("a blog with this slug already exists"), "title"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create blog", util.GenerateErrorMessages(err))
		return
	}

	status := body.Status
	if status == "" {
		status = constant.BlogStatusActive
	}

	image := bc.resolveImage(ctx, body.Image, util.GetBlogDirectoryPath())

	blog, err := bc.app.Repository.Blog.Create(ctx, nil, &model.Blog{
		Title:       body.Title,
		Slug:        slug,
		Content:     body.Content,
		Image:       image,
		Status:      status,
		IsHighlight: body.IsHighlight,
	})
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create blog", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Blog created", gin.H{
		"blog": blog,
	})
}

func (bc BlogController) ListBlogs(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)
	status := constant.BlogStatus(ctx.Query("status"))
	search := ctx.Query("search")

	blogs, totalBlogs, err := bc.app.Repository.Blog.List(ctx, nil, status, search, page, pageSize)
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list blogs", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"blogs":      blogs,
		"pagination": util.NewPagination(page, pageSize, totalBlogs),
	})
}

func (bc BlogController) TopViewedBlogs(ctx *gin.Context) {
	limit := constant.DefaultPageSize
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			limit = uint(parsed)
		}
	}
	if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}

	blogs, err := bc.app.Repository.Blog.TopViewed(ctx, nil, limit)
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list blogs", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"blogs": blogs,
	})
}

func (bc BlogController) GetBlogBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	blog, err := bc.app.Repository.Blog.GetBySlug(ctx, nil, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Blog not found", util.GenerateErrorMessages(err))
			return
		}
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get blog", util.GenerateErrorMessages(err))
		return
	}

	if err := bc.app.Repository.Blog.IncrementViews(ctx, nil, slug); err != nil {
		// View counting is not part of the read contract.
		bc.app.Logger.Errorf("Failed to increment views for %s: %v", slug, err)
	} else {
		blog.Views++
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"blog": blog,
	})
}

// UploadImage stores a multipart image and returns its public URL, used by
// the admin editor for inline blog images.
func (bc BlogController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "No image uploaded", util.GenerateErrorMessages(errors.New("image file is required"), "image"))
		return
	}

	if bc.app.S3 == nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Image storage not configured", util.GenerateErrorMessages(errors.New("image storage is not configured")))
		return
	}

	url, err := util.UploadImageByFileHeader(ctx, file, &util.ImageUploadOptions{
		DirectoryPath: util.GetBlogDirectoryPath(),
		Bucket:        bc.app.Config.Minio.BUCKET,
		S3:            bc.app.S3,
	})
	if err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload image", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Image uploaded", gin.H{
		"url": url,
	})
}

func (bc BlogController) UpdateBlogBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	type Request struct {
		Title       *string               `json:"title" form:"title" binding:"omitempty,strNotEmpty,cmax=200"`
		Content     *[]model.ContentBlock `json:"content" form:"content"`
		Image       *string               `json:"image" form:"image"`
		Status      *constant.BlogStatus  `json:"status" form:"status" binding:"omitempty,oneof=active inactive draft"`
		IsHighlight *bool                 `json:"isHighlight" form:"isHighlight"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	existing, err := bc.app.Repository.Blog.GetBySlug(ctx, nil, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Blog not found", util.GenerateErrorMessages(err))
			return
		}
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update blog", util.GenerateErrorMessages(err))
		return
	}

	updates := map[string]any{}
	if body.Title != nil {
		newSlug := util.Slugify(*body.Title)
		if newSlug == "" {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid blog title", util.GenerateErrorMessages(errors.New("title does not produce a valid slug"), "title"))
			return
		}

		if newSlug != slug {
			if _, err := bc.app.Repository.Blog.GetBySlug(ctx, nil, newSlug); err == nil {
				util.ResponseFailed(ctx, http.StatusBadRequest, "Blog already exists", util.GenerateErrorMessages(errors.New("a blog with this slug already exists"), "title"))
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				bc.app.Logger.Error(err)
				util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update blog", util.GenerateErrorMessages(err))
				return
			}
		}

		updates["title"] = *body.Title
		updates["slug"] = newSlug
	}
	if body.Content != nil {
		for _, block := range *body.Content {
			if err := block.Validate(); err != nil {
				util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid content block", util.GenerateErrorMessages(err, "content"))
				return
			}
		}

		content, err := util.ToJSONColumn(*body.Content)
		if err != nil {
			bc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update blog", util.GenerateErrorMessages(err))
			return
		}
		updates["content"] = content
	}
	if body.Image != nil {
		// A resubmitted identical URL is kept as is.
		if *body.Image != existing.Image {
			bc.deleteStoredImage(ctx, existing.Image)
		}
		updates["image"] = bc.resolveImage(ctx, *body.Image, util.GetBlogDirectoryPath())
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.IsHighlight != nil {
		updates["is_highlight"] = *body.IsHighlight
	}

	blog, err := bc.app.Repository.Blog.UpdateBySlug(ctx, nil, slug, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Blog not found", util.GenerateErrorMessages(err))
			return
		}
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update blog", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Blog updated", gin.H{
		"blog": blog,
	})
}

// DeleteBlogBySlug is two-phase: an active blog is first soft deleted
// (status flips to inactive), and only a blog that is already inactive is
// permanently removed. The explicit status check guards against a
// double-click permanently deleting a live post.
func (bc BlogController) DeleteBlogBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	blog, err := bc.app.Repository.Blog.GetBySlug(ctx, nil, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Blog not found", util.GenerateErrorMessages(err))
			return
		}
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete blog", util.GenerateErrorMessages(err))
		return
	}

	if blog.Status == constant.BlogStatusInactive {
		if err := bc.app.Repository.Blog.DeleteBySlug(ctx, nil, slug); err != nil {
			bc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete blog", util.GenerateErrorMessages(err))
			return
		}

		bc.deleteStoredImage(ctx, blog.Image)

		util.ResponseSuccess(ctx, http.StatusOK, "Blog permanently deleted", nil)
		return
	}

	if err := bc.app.Repository.Blog.SoftDeleteBySlug(ctx, nil, slug); err != nil {
		bc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete blog", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Blog deactivated", nil)
}
