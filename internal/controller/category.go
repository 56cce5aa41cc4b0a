package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

type CategoryController struct {
	*baseController
}

func (cc CategoryController) CreateCategory(ctx *gin.Context) {
	type Request struct {
		Name     string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		IsActive *bool  `json:"isActive" form:"isActive"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	slug := util.Slugify(body.Name)
	if slug == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category name", util.GenerateErrorMessages(errors.New("name does not produce a valid slug"), "name"))
		return
	}

	if _, err := cc.app.Repository.Category.GetBySlug(ctx, nil, slug); err == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Category already exists", util.GenerateErrorMessages(errors.New("a category with this slug already exists"), "name"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create category", util.GenerateErrorMessages(err))
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	category, err := cc.app.Repository.Category.Create(ctx, nil, &model.Category{
		Name:     body.Name,
		Slug:     slug,
		IsActive: isActive,
	})
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create category", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Category created", gin.H{
		"category": category,
	})
}

func (cc CategoryController) ListCategories(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)

	var isActive *bool
	if raw := ctx.Query("isActive"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			isActive = &parsed
		}
	}

	categories, totalCategories, err := cc.app.Repository.Category.List(ctx, nil, isActive, page, pageSize)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list categories", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"categories": categories,
		"pagination": util.NewPagination(page, pageSize, totalCategories),
	})
}

func (cc CategoryController) GetCategoryById(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")
	if err := uuid.Validate(categoryId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	category, err := cc.app.Repository.Category.GetById(ctx, nil, categoryId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Category not found", util.GenerateErrorMessages(err))
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get category", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"category": category,
	})
}

func (cc CategoryController) UpdateCategory(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")
	if err := uuid.Validate(categoryId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	type Request struct {
		Name     *string `json:"name" form:"name" binding:"omitempty,strNotEmpty,cmax=100"`
		IsActive *bool   `json:"isActive" form:"isActive"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		slug := util.Slugify(*body.Name)
		if slug == "" {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category name", util.GenerateErrorMessages(errors.New("name does not produce a valid slug"), "name"))
			return
		}

		// A renamed category must not collide with another category's slug.
		existing, err := cc.app.Repository.Category.GetBySlug(ctx, nil, slug)
		if err == nil && existing.ID != categoryId {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Category already exists", util.GenerateErrorMessages(errors.New("a category with this slug already exists"), "name"))
			return
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			cc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update category", util.GenerateErrorMessages(err))
			return
		}

		updates["name"] = *body.Name
		updates["slug"] = slug
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	category, err := cc.app.Repository.Category.Update(ctx, nil, categoryId, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Category not found", util.GenerateErrorMessages(err))
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update category", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Category updated", gin.H{
		"category": category,
	})
}

func (cc CategoryController) SoftDeleteCategory(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")
	if err := uuid.Validate(categoryId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	if err := cc.app.Repository.Category.SoftDelete(ctx, nil, categoryId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Category not found", util.GenerateErrorMessages(err))
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete category", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Category deactivated", nil)
}

func (cc CategoryController) DeleteCategory(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")
	if err := uuid.Validate(categoryId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	if err := cc.app.Repository.Category.Delete(ctx, nil, categoryId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Category not found", util.GenerateErrorMessages(err))
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete category", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Category deleted", nil)
}
