package servicesapi

import (
	"net/http"

	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/domain/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /services  (public, active only, grouped by category order)
func ListPublic(c *gin.Context) {
	var categories []services.Category
	err := database.DB.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = true").Order("position ASC")
		}).
		Order("position ASC").
		Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// GET /services/categories  (public)
func ListCategories(c *gin.Context) {
	var categories []services.Category
	if err := database.DB.Order("position ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// POST /admin/services/categories
func CreateCategory(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Slug     string `json:"slug"`
		Position int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if input.Slug == "" {
		input.Slug = content.MakeSlug(input.Name)
	}

	category := services.Category{Name: input.Name, Slug: input.Slug, Position: input.Position}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Category slug may already exist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// PUT /admin/services/categories/:id
func UpdateCategory(c *gin.Context) {
	var input struct {
		Name     *string `json:"name"`
		Slug     *string `json:"slug"`
		Position *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}

	res := database.DB.Model(&services.Category{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/services/categories/:id
func DeleteCategory(c *gin.Context) {
	res := database.DB.Delete(&services.Category{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /admin/services
func CreateService(c *gin.Context) {
	var input struct {
		CategoryID  string `json:"category_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Duration    string `json:"duration"`
		ImageURL    string `json:"imageUrl"`
		Position    int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var count int64
	if err := database.DB.Model(&services.Category{}).Where("id = ?", input.CategoryID).Count(&count).Error; err != nil || count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}

	if input.Slug == "" {
		input.Slug = content.MakeSlug(input.Name)
	}

	service := services.Service{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		ImageURL:    input.ImageURL,
		Active:      true,
		Position:    input.Position,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Service slug may already exist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": service})
}

// PUT /admin/services/:id
func UpdateService(c *gin.Context) {
	var input struct {
		CategoryID  *string `json:"category_id"`
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		Price       *string `json:"price"`
		Duration    *string `json:"duration"`
		ImageURL    *string `json:"imageUrl"`
		Active      *bool   `json:"active"`
		Position    *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}

	res := database.DB.Model(&services.Service{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/services/:id
func DeleteService(c *gin.Context) {
	res := database.DB.Delete(&services.Service{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
