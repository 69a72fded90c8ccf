package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/HenryHan168/FlowerStudio/controllers/cart"
)

// SetupCartRoutes registers the "/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cart := r.Group("/cart")
	{
		cart.GET("/", cartControllers.GetCart(deps.Carts))
		cart.POST("/", cartControllers.AddCartItem(deps.DB, deps.Carts))
		cart.PUT("/:lineID/quantity", cartControllers.SetCartItemQuantity(deps.Carts))
		cart.PUT("/:lineID/requirements", cartControllers.SetCartItemRequirements(deps.Carts))
		cart.DELETE("/:lineID", cartControllers.DeleteCartItem(deps.Carts))
		cart.DELETE("/", cartControllers.ClearCart(deps.Carts))
	}
}
