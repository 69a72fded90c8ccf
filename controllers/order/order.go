package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HenryHan168/FlowerStudio/models"
	"github.com/HenryHan168/FlowerStudio/services"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerEmail   string `json:"customer_email"`
	RecipientName   string `json:"recipient_name" binding:"required"`
	RecipientPhone  string `json:"recipient_phone" binding:"required"`
	DeliveryMethod  string `json:"delivery_method" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
	PreferredDate   string `json:"preferred_date" binding:"required"` // 2006-01-02
	PreferredTime   string `json:"preferred_time" binding:"required"` // e.g. "09:00-12:00"
	Notes           string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders/checkout
func CheckoutHandler(orders *services.OrderService, contacts *services.ContactService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		preferredDate, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "preferred_date must be YYYY-MM-DD"})
			return
		}

		info := services.CheckoutInfo{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			RecipientName:   req.RecipientName,
			RecipientPhone:  req.RecipientPhone,
			DeliveryMethod:  models.DeliveryMethod(req.DeliveryMethod),
			DeliveryAddress: req.DeliveryAddress,
			PreferredDate:   preferredDate,
			PreferredTime:   req.PreferredTime,
			Notes:           req.Notes,
		}

		created, err := orders.Checkout(c.Request.Context(), info)
		if err != nil {
			var validation *services.ValidationError
			switch {
			case errors.As(err, &validation):
				c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "fields": validation.Fields})
			case errors.Is(err, services.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// Best-effort bookkeeping: remember the checkout parties for reuse.
		_ = contacts.QuickAddFromOrder(c.Request.Context(), info)

		orderNumbers := make([]string, 0, len(created))
		for _, order := range created {
			orderNumbers = append(orderNumbers, order.OrderNumber)
			hub.Broadcast(OrderEvent{Type: "order_created", Order: order})
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":       "Order placed successfully",
			"order_numbers": orderNumbers,
		})
	}
}

// GET /orders (merchant)
func GetAllOrdersHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:orderID — accepts the order id or the order number
func GetOrderByIDHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetOrder(c.Request.Context(), c.Param("orderID"))
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status (merchant)
func UpdateOrderStatusHandler(orders *services.OrderService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.AdvanceStatus(c.Request.Context(), c.Param("orderID"), newStatus)
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "order status can no longer change"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		hub.Broadcast(OrderEvent{Type: "status_changed", Order: *order})
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}
