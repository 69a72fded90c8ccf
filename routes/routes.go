package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderControllers "github.com/HenryHan168/FlowerStudio/controllers/order"
	"github.com/HenryHan168/FlowerStudio/services"
)

// Deps bundles everything the route groups need. All services are built in
// main and injected; nothing here reaches for globals.
type Deps struct {
	DB       *gorm.DB
	Carts    *services.CartService
	Orders   *services.OrderService
	Auth     *services.AuthService
	Contacts *services.ContactService
	Hub      *orderControllers.Hub
	Logger   *zap.Logger
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupStudioRoutes(r, deps)
	SetupProductRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupContactRoutes(r, deps)
	SetupOrderRoutes(r, deps)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "flowerstudio-api"})
	})
}
