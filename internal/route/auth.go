package route

import (
	"github.com/Sovanra/DesignDeck/internal/controller"
	"github.com/Sovanra/DesignDeck/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Auth(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshAccessToken)
		auth.POST("/logout", middleware.AuthMiddleware, authController.Logout)
		auth.GET("/me", middleware.AuthMiddleware, authController.Me)
	}
}
