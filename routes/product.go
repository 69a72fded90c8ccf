package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/HenryHan168/FlowerStudio/controllers/product"
	"github.com/HenryHan168/FlowerStudio/middleware"
)

// SetupProductRoutes registers the "/products/*" endpoints. Catalog reads are
// public; mutations are merchant-only.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("/", productControllers.GetProducts(deps.DB))
		products.GET("/:id", productControllers.GetProductByID(deps.DB))
	}

	merchant := products.Group("")
	merchant.Use(middleware.RequireMerchant(deps.Auth))
	{
		merchant.POST("/", productControllers.CreateProduct(deps.DB))
		merchant.PUT("/:id", productControllers.UpdateProduct(deps.DB))
		merchant.DELETE("/:id", productControllers.DeleteProduct(deps.DB))
	}
}
