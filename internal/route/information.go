package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_Information(r *gin.RouterGroup, informationController *controller.InformationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/information")
	{
		v1.POST("", informationController.CreateInformation)
	}

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		admin.GET("", informationController.ListInformation)
		admin.GET("/:informationId", informationController.GetInformationById)
		admin.PATCH("/:informationId/status", informationController.UpdateInformationStatus)
	}
}
