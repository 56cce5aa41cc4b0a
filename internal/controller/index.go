package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, http.StatusOK, "", gin.H{
		"name": "InteriorHub API",
	})
}
