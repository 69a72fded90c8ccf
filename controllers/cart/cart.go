package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
	"github.com/HenryHan168/FlowerStudio/services"
)

type AddCartItemInput struct {
	ProductID          string `json:"product_id" binding:"required"`
	Quantity           int    `json:"quantity"`
	CustomRequirements string `json:"custom_requirements"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SetRequirementsInput struct {
	CustomRequirements string `json:"custom_requirements"`
}

// GET /cart
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := carts.Lines(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		var total float64
		var quantity int
		for _, line := range lines {
			total += line.Subtotal()
			quantity += line.Quantity
		}
		c.JSON(http.StatusOK, gin.H{
			"items":          lines,
			"total":          total,
			"total_quantity": quantity,
		})
	}
}

// POST /cart
func AddCartItem(db *gorm.DB, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.FlowerProduct
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		line, err := carts.AddLine(c.Request.Context(), &product, input.Quantity, input.CustomRequirements)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// PUT /cart/:lineID/quantity
func SetCartItemQuantity(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		err := carts.SetQuantity(c.Request.Context(), c.Param("lineID"), *input.Quantity)
		if errors.Is(err, services.ErrCartLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// PUT /cart/:lineID/requirements
func SetCartItemRequirements(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetRequirementsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		err := carts.UpdateRequirements(c.Request.Context(), c.Param("lineID"), input.CustomRequirements)
		if errors.Is(err, services.ErrCartLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /cart/:lineID
func DeleteCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.RemoveLine(c.Request.Context(), c.Param("lineID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
