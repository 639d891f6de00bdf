package route

import (
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Annotations(r *gin.RouterGroup, ac *controller.AnnotationController, middleware *middleware.Middleware) {
	annotations := r.Group("/annotations")
	annotations.Use(middleware.OptionalAuthMiddleware)
	{
		annotations.GET("/file/:fileId", ac.GetAnnotationsByFile)
		annotations.GET("/project/:projectId", ac.GetAnnotationsByProject)
		annotations.POST("", ac.CreateAnnotation)
		annotations.DELETE("/:annotationId", ac.DeleteAnnotation)
	}
}
