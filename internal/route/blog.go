package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_Blog(r *gin.RouterGroup, blogController *controller.BlogController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/blog")
	{
		v1.GET("", blogController.ListBlogs)
		v1.GET("/top-viewed", blogController.TopViewedBlogs)
		v1.GET("/:slug", blogController.GetBlogBySlug)
	}

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		admin.POST("", blogController.CreateBlog)
		admin.POST("/upload", blogController.UploadImage)
		admin.PUT("/:slug", blogController.UpdateBlogBySlug)
		admin.DELETE("/:slug", blogController.DeleteBlogBySlug)
	}
}
