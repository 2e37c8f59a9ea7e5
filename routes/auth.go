package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eonerhime/easy-shoppers-hub/auth"
	"github.com/eonerhime/easy-shoppers-hub/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignupHandler(deps.DB, deps.Cfg.JWTSecret))
		authGroup.POST("/login", auth.LoginHandler(deps.DB, deps.Cfg.JWTSecret))

		// Session lookup and logout need a valid token.
		authGroup.GET("/session", middleware.ValidateToken(deps.DB, deps.Cfg.JWTSecret), auth.SessionHandler(deps.DB))
		authGroup.POST("/logout", middleware.ValidateToken(deps.DB, deps.Cfg.JWTSecret), auth.LogoutHandler(deps.DB))
	}
}
