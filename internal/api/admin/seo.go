package admin

import (
	"net/http"

	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/seo
func GetGlobalSEO(c *gin.Context) {
	var seo content.GlobalSEOSetting
	if err := database.DB.First(&seo).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": content.GlobalSEOSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load SEO settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": seo})
}

// PUT /admin/seo  (upsert, single row)
func UpdateGlobalSEO(c *gin.Context) {
	var input struct {
		SiteTitle       *string `json:"site_title"`
		SiteDescription *string `json:"site_description"`
		SiteKeywords    *string `json:"site_keywords"`
		OGImage         *string `json:"og_image"`
		CanonicalBase   *string `json:"canonical_base"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var seo content.GlobalSEOSetting
	if err := database.DB.First(&seo).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load SEO settings"})
		return
	}

	if input.SiteTitle != nil {
		seo.SiteTitle = *input.SiteTitle
	}
	if input.SiteDescription != nil {
		seo.SiteDescription = *input.SiteDescription
	}
	if input.SiteKeywords != nil {
		seo.SiteKeywords = *input.SiteKeywords
	}
	if input.OGImage != nil {
		seo.OGImage = *input.OGImage
	}
	if input.CanonicalBase != nil {
		seo.CanonicalBase = *input.CanonicalBase
	}

	if err := database.DB.Save(&seo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save SEO settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": seo})
}
