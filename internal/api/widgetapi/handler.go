package widgetapi

import (
	"net/http"

	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/widget"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /widget/whatsapp  (public)
//
// The public site gets either the enabled widget config or an explicit
// disabled marker; it never sees a half-configured row.
func GetPublic(c *gin.Context) {
	var w widget.WhatsAppWidget
	err := database.DB.First(&w).Error
	if err != nil || !w.Enabled || w.Phone == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"enabled": false}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
}

// GET /admin/widget/whatsapp
func Get(c *gin.Context) {
	var w widget.WhatsAppWidget
	if err := database.DB.First(&w).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": widget.WhatsAppWidget{Position: widget.PositionRight}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load widget"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
}

// PUT /admin/widget/whatsapp  (upsert, single row)
func Update(c *gin.Context) {
	var input struct {
		Enabled   *bool   `json:"enabled"`
		Phone     *string `json:"phone"`
		Greeting  *string `json:"greeting"`
		Position  *string `json:"position"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if input.Position != nil && *input.Position != widget.PositionLeft && *input.Position != widget.PositionRight {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "position must be left or right"})
		return
	}

	var w widget.WhatsAppWidget
	if err := database.DB.First(&w).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load widget"})
			return
		}
		w = widget.WhatsAppWidget{Position: widget.PositionRight}
	}

	if input.Enabled != nil {
		w.Enabled = *input.Enabled
	}
	if input.Phone != nil {
		w.Phone = *input.Phone
	}
	if input.Greeting != nil {
		w.Greeting = *input.Greeting
	}
	if input.Position != nil {
		w.Position = *input.Position
	}
	if input.AvatarURL != nil {
		w.AvatarURL = *input.AvatarURL
	}

	if err := database.DB.Save(&w).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save widget"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
}
