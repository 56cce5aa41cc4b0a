package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_Design(r *gin.RouterGroup, designController *controller.DesignController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/designs")
	{
		v1.GET("", designController.ListDesigns)
		v1.GET("/highlight", designController.ListHighlightDesigns)
		v1.GET("/category/:categoryId", designController.ListDesignsByCategory)
		v1.GET("/:designId", designController.GetDesignById)
	}

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		admin.POST("", designController.CreateDesign)
		admin.PUT("/:designId", designController.UpdateDesign)
		admin.PATCH("/:designId", designController.UpdateDesign)
		admin.DELETE("/:designId", designController.DeleteDesign)
	}
}
