package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/HenryHan168/FlowerStudio/controllers/order"
	"github.com/HenryHan168/FlowerStudio/middleware"
)

// SetupOrderRoutes registers the "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	{
		// Checkout: convert the cart into orders
		orders.POST("/checkout", orderControllers.CheckoutHandler(deps.Orders, deps.Contacts, deps.Hub))

		// Fetch a single order by id or order number
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.Orders))
	}

	merchant := orders.Group("")
	merchant.Use(middleware.RequireMerchant(deps.Auth))
	{
		// Dashboard order listing
		merchant.GET("/", orderControllers.GetAllOrdersHandler(deps.Orders))

		// Excel export for bookkeeping
		merchant.GET("/export", orderControllers.ExportOrdersToExcel(deps.Orders))

		// Websocket endpoint for real-time order updates
		merchant.GET("/ws", deps.Hub.HandleWS)

		// Advance order status (e.g. confirmed, ready, cancelled)
		merchant.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.Orders, deps.Hub))
	}
}
