package route

import (
	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/controller"
)

func V1_Index(r *gin.RouterGroup, indexController *controller.IndexController) {
	v1 := r.Group("/v1")
	{
		v1.GET("", indexController.Index)
	}
}
