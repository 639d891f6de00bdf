package route

import (
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	"github.com/gin-gonic/gin"
)

func AIDesign(r *gin.RouterGroup, aic *controller.AIDesignController, middleware *middleware.Middleware) {
	aiDesign := r.Group("/ai-design")
	aiDesign.Use(middleware.AuthMiddleware)
	{
		aiDesign.POST("/analyze/:projectId", aic.Analyze)
		aiDesign.POST("/color-palette/:projectId", aic.ColorPalette)
		aiDesign.POST("/material-recommendations/:projectId", aic.MaterialRecommendations)
		aiDesign.POST("/cost-estimate/:projectId", aic.CostEstimate)
		aiDesign.POST("/quick-suggestion", aic.QuickSuggestion)
	}
}
