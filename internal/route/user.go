package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_User(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/user")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/profile", userController.Profile)
	}

	admin := v1.Group("")
	admin.Use(middleware.AdminMiddleware)
	{
		admin.GET("", userController.ListUsers)
		admin.GET("/:userId", userController.GetUserById)
		admin.POST("", userController.CreateUser)
		admin.PUT("/:userId", userController.UpdateUser)
		admin.DELETE("/:userId", userController.DeleteUser)
	}
}
