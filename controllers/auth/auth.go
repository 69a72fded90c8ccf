package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HenryHan168/FlowerStudio/services"
)

type MerchantLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// POST /auth/merchant-login
func MerchantLogin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MerchantLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, err := auth.MerchantLogin(c.Request.Context(), input.Password)
		switch {
		case errors.Is(err, services.ErrAccountLocked):
			c.JSON(http.StatusLocked, gin.H{"error": "account locked, contact the administrator"})
			return
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
