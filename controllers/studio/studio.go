package studioControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

// GET /studio
func GetStudioInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var studio models.StudioInfo
		if err := db.Preload("BusinessHours").First(&studio).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch studio info"})
			return
		}

		status := "closed"
		if studio.IsOpenAt(time.Now()) {
			status = "open"
		}
		c.JSON(http.StatusOK, gin.H{
			"studio":          studio,
			"business_status": status,
		})
	}
}
