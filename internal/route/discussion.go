package route

import (
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Discussions(r *gin.RouterGroup, dc *controller.DiscussionController, middleware *middleware.Middleware) {
	discussions := r.Group("/discussions")
	discussions.Use(middleware.OptionalAuthMiddleware)
	{
		discussions.GET("/project/:projectId", dc.GetDiscussionsByProject)
		discussions.POST("", dc.CreateDiscussion)
	}
}
