package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_Category(r *gin.RouterGroup, categoryController *controller.CategoryController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/categories")
	{
		v1.GET("", categoryController.ListCategories)
		v1.GET("/:categoryId", categoryController.GetCategoryById)
	}

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		admin.POST("", categoryController.CreateCategory)
		admin.PUT("/:categoryId", categoryController.UpdateCategory)
		admin.PATCH("/:categoryId", categoryController.UpdateCategory)
		admin.DELETE("/:categoryId/soft", categoryController.SoftDeleteCategory)
		admin.DELETE("/:categoryId", categoryController.DeleteCategory)
	}
}
