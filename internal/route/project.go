package route

import (
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware)
	{
		projects.GET("", pc.GetProjectList)
		projects.POST("", pc.CreateProject)
		projects.GET("/:projectId", pc.GetProjectById)
		projects.POST("/:projectId/upload", pc.UploadProjectFile)
		projects.DELETE("/:projectId", pc.DeleteProject)
	}
}
