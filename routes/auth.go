package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/HenryHan168/FlowerStudio/controllers/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/merchant-login", authControllers.MerchantLogin(deps.Auth))
	}
}
