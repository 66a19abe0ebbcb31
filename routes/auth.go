package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/auth"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Auth, deps.Registry))
		authGroup.POST("/login", authControllers.Login(deps.Auth, deps.Registry))
		authGroup.POST("/google", authControllers.GoogleLogin(deps.Verifier, deps.Auth, deps.Registry))
		authGroup.POST("/change-password", authControllers.ChangePassword(deps.Users, deps.Config))

		authGroup.POST("/logout",
			middleware.RequireSession(deps.Registry, deps.Auth),
			authControllers.Logout(deps.Registry))
	}
}
