package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/repository"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

type DesignController struct {
	*baseController
}

func (dc DesignController) CreateDesign(ctx *gin.Context) {
	type Request struct {
		ProjectName         string   `json:"projectName" form:"projectName" binding:"required,strNotEmpty,cmax=200"`
		MainImage           string   `json:"mainImage" form:"mainImage" binding:"required,strNotEmpty"`
		SubImages           []string `json:"subImages" form:"subImages"`
		Investor            string   `json:"investor" form:"investor"`
		ImplementationYear  int      `json:"implementationYear" form:"implementationYear"`
		ProjectType         string   `json:"projectType" form:"projectType"`
		Address             string   `json:"address" form:"address"`
		InvestmentLevel     string   `json:"investmentLevel" form:"investmentLevel"`
		LandArea            string   `json:"landArea" form:"landArea" binding:"required,strNotEmpty"`
		ConstructionArea    string   `json:"constructionArea" form:"constructionArea"`
		Floors              string   `json:"floors" form:"floors"`
		Functionality       string   `json:"functionality" form:"functionality"`
		DesignUnit          string   `json:"designUnit" form:"designUnit"`
		DetailedDescription string   `json:"detailedDescription" form:"detailedDescription"`
		CategoryID          string   `json:"categoryId" form:"categoryId" binding:"required"`
		IsHighlight         bool     `json:"isHighlight" form:"isHighlight"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	if len(body.SubImages) > constant.MaxSubImages {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Too many sub images",
			util.GenerateErrorMessages(fmt.Errorf("subImages must contain at most %d items", constant.MaxSubImages), "subImages"))
		return
	}

	if err := uuid.Validate(body.CategoryID); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	if _, err := dc.app.Repository.Category.GetById(ctx, nil, body.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Category does not exist", util.GenerateErrorMessages(errors.New("referenced category does not exist"), "categoryId"))
			return
		}
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create design", util.GenerateErrorMessages(err))
		return
	}

	mainImage := dc.resolveImage(ctx, body.MainImage, util.GetDesignDirectoryPath())
	subImages := dc.resolveImages(ctx, body.SubImages, util.GetDesignDirectoryPath())

	design, err := dc.app.Repository.Design.Create(ctx, nil, &model.Design{
		ProjectName:         body.ProjectName,
		MainImage:           mainImage,
		SubImages:           subImages,
		Investor:            body.Investor,
		ImplementationYear:  body.ImplementationYear,
		ProjectType:         body.ProjectType,
		Address:             body.Address,
		InvestmentLevel:     body.InvestmentLevel,
		LandArea:            body.LandArea,
		ConstructionArea:    body.ConstructionArea,
		Floors:              body.Floors,
		Functionality:       body.Functionality,
		DesignUnit:          body.DesignUnit,
		DetailedDescription: body.DetailedDescription,
		CategoryID:          body.CategoryID,
		IsHighlight:         body.IsHighlight,
	})
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create design", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Design created", gin.H{
		"design": design,
	})
}

func (dc DesignController) ListDesigns(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)

	filter := repository.DesignFilter{
		CategoryID:  ctx.Query("category"),
		ProjectType: ctx.Query("type"),
		Search:      ctx.Query("search"),
	}
	if raw := ctx.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.Year = year
		}
	}

	designs, totalDesigns, err := dc.app.Repository.Design.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list designs", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"designs":    designs,
		"pagination": util.NewPagination(page, pageSize, totalDesigns),
	})
}

func (dc DesignController) ListDesignsByCategory(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")
	if err := uuid.Validate(categoryId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
		return
	}

	page, pageSize := util.ParsePageQuery(ctx)

	designs, totalDesigns, err := dc.app.Repository.Design.List(ctx, nil, repository.DesignFilter{CategoryID: categoryId}, page, pageSize)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list designs", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"designs":    designs,
		"pagination": util.NewPagination(page, pageSize, totalDesigns),
	})
}

func (dc DesignController) ListHighlightDesigns(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)

	highlight := true
	designs, totalDesigns, err := dc.app.Repository.Design.List(ctx, nil, repository.DesignFilter{Highlight: &highlight}, page, pageSize)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list designs", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"designs":    designs,
		"pagination": util.NewPagination(page, pageSize, totalDesigns),
	})
}

func (dc DesignController) GetDesignById(ctx *gin.Context) {
	designId := ctx.Param("designId")
	if err := uuid.Validate(designId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid design id", util.GenerateErrorMessages(err, "designId"))
		return
	}

	design, err := dc.app.Repository.Design.GetById(ctx, nil, designId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Design not found", util.GenerateErrorMessages(err))
			return
		}
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get design", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"design": design,
	})
}

func (dc DesignController) UpdateDesign(ctx *gin.Context) {
	designId := ctx.Param("designId")
	if err := uuid.Validate(designId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid design id", util.GenerateErrorMessages(err, "designId"))
		return
	}

	type Request struct {
		ProjectName         *string   `json:"projectName" form:"projectName" binding:"omitempty,strNotEmpty,cmax=200"`
		MainImage           *string   `json:"mainImage" form:"mainImage" binding:"omitempty,strNotEmpty"`
		SubImages           *[]string `json:"subImages" form:"subImages"`
		Investor            *string   `json:"investor" form:"investor"`
		ImplementationYear  *int      `json:"implementationYear" form:"implementationYear"`
		ProjectType         *string   `json:"projectType" form:"projectType"`
		Address             *string   `json:"address" form:"address"`
		InvestmentLevel     *string   `json:"investmentLevel" form:"investmentLevel"`
		LandArea            *string   `json:"landArea" form:"landArea" binding:"omitempty,strNotEmpty"`
		ConstructionArea    *string   `json:"constructionArea" form:"constructionArea"`
		Floors              *string   `json:"floors" form:"floors"`
		Functionality       *string   `json:"functionality" form:"functionality"`
		DesignUnit          *string   `json:"designUnit" form:"designUnit"`
		DetailedDescription *string   `json:"detailedDescription" form:"detailedDescription"`
		CategoryID          *string   `json:"categoryId" form:"categoryId"`
		IsHighlight         *bool     `json:"isHighlight" form:"isHighlight"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	if body.SubImages != nil && len(*body.SubImages) > constant.MaxSubImages {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Too many sub images",
			util.GenerateErrorMessages(fmt.Errorf("subImages must contain at most %d items", constant.MaxSubImages), "subImages"))
		return
	}

	existing, err := dc.app.Repository.Design.GetById(ctx, nil, designId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Design not found", util.GenerateErrorMessages(err))
			return
		}
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update design", util.GenerateErrorMessages(err))
		return
	}

	updates := map[string]any{}
	if body.ProjectName != nil {
		updates["project_name"] = *body.ProjectName
	}
	if body.MainImage != nil {
		// Replacing the main image: the prior stored asset is removed best
		// effort before the new one is uploaded. A resubmitted identical URL
		// is kept as is.
		if *body.MainImage != existing.MainImage {
			dc.deleteStoredImage(ctx, existing.MainImage)
		}
		updates["main_image"] = dc.resolveImage(ctx, *body.MainImage, util.GetDesignDirectoryPath())
	}
	if body.SubImages != nil {
		// Only assets absent from the incoming list are deleted, so hosted
		// URLs the client resubmits unchanged stay valid.
		dc.deleteStoredImages(ctx, util.RemovedImages(existing.SubImages, *body.SubImages))

		resolved := dc.resolveImages(ctx, *body.SubImages, util.GetDesignDirectoryPath())
		subImages, err := util.ToJSONColumn(resolved)
		if err != nil {
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update design", util.GenerateErrorMessages(err))
			return
		}
		updates["sub_images"] = subImages
	}
	if body.Investor != nil {
		updates["investor"] = *body.Investor
	}
	if body.ImplementationYear != nil {
		updates["implementation_year"] = *body.ImplementationYear
	}
	if body.ProjectType != nil {
		updates["project_type"] = *body.ProjectType
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.InvestmentLevel != nil {
		updates["investment_level"] = *body.InvestmentLevel
	}
	if body.LandArea != nil {
		updates["land_area"] = *body.LandArea
	}
	if body.ConstructionArea != nil {
		updates["construction_area"] = *body.ConstructionArea
	}
	if body.Floors != nil {
		updates["floors"] = *body.Floors
	}
	if body.Functionality != nil {
		updates["functionality"] = *body.Functionality
	}
	if body.DesignUnit != nil {
		updates["design_unit"] = *body.DesignUnit
	}
	if body.DetailedDescription != nil {
		updates["detailed_description"] = *body.DetailedDescription
	}
	if body.CategoryID != nil {
		if err := uuid.Validate(*body.CategoryID); err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category id", util.GenerateErrorMessages(err, "categoryId"))
			return
		}
		if _, err := dc.app.Repository.Category.GetById(ctx, nil, *body.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.ResponseFailed(ctx, http.StatusBadRequest, "Category does not exist", util.GenerateErrorMessages(errors.New("referenced category does not exist"), "categoryId"))
				return
			}
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update design", util.GenerateErrorMessages(err))
			return
		}
		updates["category_id"] = *body.CategoryID
	}
	if body.IsHighlight != nil {
		updates["is_highlight"] = *body.IsHighlight
	}

	design, err := dc.app.Repository.Design.Update(ctx, nil, designId, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Design not found", util.GenerateErrorMessages(err))
			return
		}
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update design", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Design updated", gin.H{
		"design": design,
	})
}

func (dc DesignController) DeleteDesign(ctx *gin.Context) {
	designId := ctx.Param("designId")
	if err := uuid.Validate(designId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid design id", util.GenerateErrorMessages(err, "designId"))
		return
	}

	design, err := dc.app.Repository.Design.GetById(ctx, nil, designId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Design not found", util.GenerateErrorMessages(err))
			return
		}
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete design", util.GenerateErrorMessages(err))
		return
	}

	if err := dc.app.Repository.Design.Delete(ctx, nil, designId); err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete design", util.GenerateErrorMessages(err))
		return
	}

	// Asset cleanup is best effort and not part of the delete contract.
	dc.deleteStoredImages(ctx, design.AllImages())

	util.ResponseSuccess(ctx, http.StatusOK, "Design deleted", nil)
}
