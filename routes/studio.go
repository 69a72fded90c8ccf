package routes

import (
	"github.com/gin-gonic/gin"

	studioControllers "github.com/HenryHan168/FlowerStudio/controllers/studio"
)

// SetupStudioRoutes registers the "/studio" endpoints.
func SetupStudioRoutes(r *gin.Engine, deps Deps) {
	r.GET("/studio", studioControllers.GetStudioInfo(deps.DB))
}
