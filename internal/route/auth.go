package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
	"github.com/phuchoang/InteriorHub/internal/middleware"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/register", authController.Register)
		v1.POST("/login", authController.Login)
		v1.POST("/refresh", authController.RefreshAccessToken)
		v1.POST("/logout", middleware.AuthMiddleware, authController.Logout)
		v1.GET("/me", middleware.AuthMiddleware, authController.Me)
	}
}
