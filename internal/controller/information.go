package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/mailer"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/gorm"
)

type InformationController struct {
	*baseController
}

// CreateInformation handles the public contact form.
func (ic InformationController) CreateInformation(ctx *gin.Context) {
	var body model.Information

	if err := ctx.ShouldBind(&body); err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	information, err := ic.app.Repository.Information.Create(ctx, nil, &model.Information{
		FullName:    body.FullName,
		PhoneNumber: body.PhoneNumber,
		Province:    body.Province,
		District:    body.District,
		Description: body.Description,
		Status:      constant.InformationStatusPending,
	})
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to submit contact request", util.GenerateErrorMessages(err))
		return
	}

	// Staff notification is fire-and-forget; the lead is already stored.
	if staffEmail := ic.app.Config.Mail.STAFF_EMAIL; staffEmail != "" {
		go func(lead model.Information) {
			if _, err := ic.app.Mailer.Send(mailer.LEAD_NOTIFICATION_TEMPLATE, "Staff", staffEmail, lead); err != nil {
				ic.app.Logger.Errorf("Failed to send lead notification: %v", err)
			}
		}(*information)
	}

	util.ResponseSuccess(ctx, http.StatusCreated, "Contact request submitted", gin.H{
		"information": information,
	})
}

func (ic InformationController) ListInformation(ctx *gin.Context) {
	page, pageSize := util.ParsePageQuery(ctx)
	status := constant.InformationStatus(ctx.Query("status"))

	information, totalInformation, err := ic.app.Repository.Information.List(ctx, nil, status, page, pageSize)
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list contact requests", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"information": information,
		"pagination":  util.NewPagination(page, pageSize, totalInformation),
	})
}

func (ic InformationController) GetInformationById(ctx *gin.Context) {
	informationId := ctx.Param("informationId")
	if err := uuid.Validate(informationId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid information id", util.GenerateErrorMessages(err, "informationId"))
		return
	}

	information, err := ic.app.Repository.Information.GetById(ctx, nil, informationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Contact request not found", util.GenerateErrorMessages(err))
			return
		}
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get contact request", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"information": information,
	})
}

func (ic InformationController) UpdateInformationStatus(ctx *gin.Context) {
	informationId := ctx.Param("informationId")
	if err := uuid.Validate(informationId); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid information id", util.GenerateErrorMessages(err, "informationId"))
		return
	}

	type Request struct {
		Status constant.InformationStatus `json:"status" form:"status" binding:"required,oneof=pending completed"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err))
		return
	}

	information, err := ic.app.Repository.Information.UpdateStatus(ctx, nil, informationId, body.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Contact request not found", util.GenerateErrorMessages(err))
			return
		}
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update contact request", util.GenerateErrorMessages(err))
		return
	}

	util.ResponseSuccess(ctx, http.StatusOK, "Contact request updated", gin.H{
		"information": information,
	})
}
