package pages

import (
	"errors"
	"net/http"
	"time"

	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// invalidate is wired by the routes package to drop cached rendered
// pages after any content mutation.
var invalidate = func() {}

func SetInvalidator(fn func()) {
	if fn != nil {
		invalidate = fn
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
}

func toPageDTO(p *content.Page, withBlocks bool) PageDTO {
	dto := PageDTO{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Status:          p.Status,
		Active:          p.Active,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		CanonicalURL:    p.CanonicalURL,
		OGImage:         p.OGImage,
	}
	if withBlocks {
		dto.Blocks = make([]BlockDTO, 0, len(p.Blocks))
		for _, b := range p.Blocks {
			dto.Blocks = append(dto.Blocks, BlockDTO{
				ID:       b.ID,
				Type:     b.Type,
				Position: b.Position,
				Visible:  b.Visible,
				Content:  b.Content,
			})
		}
	}
	return dto
}

// GET /admin/pages
func ListPages(c *gin.Context) {
	s := store.New(database.DB)
	pages, err := s.ListPages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load pages"})
		return
	}

	out := make([]PageDTO, 0, len(pages))
	for i := range pages {
		out = append(out, toPageDTO(&pages[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

// GET /admin/pages/:id
func GetPage(c *gin.Context) {
	s := store.New(database.DB)
	page, err := s.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toPageDTO(page, true)})
}

// POST /admin/pages
func CreatePage(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	page := &content.Page{
		Slug:   store.NormalizeSlugInput(req.Slug),
		Title:  req.Title,
		Status: req.Status,
		Active: true,
	}

	s := store.New(database.DB)
	if err := s.CreatePage(c.Request.Context(), page); err != nil {
		fail(c, err)
		return
	}

	invalidate()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toPageDTO(page, false)})
}

// PUT /admin/pages/:id
func UpdatePage(c *gin.Context) {
	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	s := store.New(database.DB)
	page, err := s.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if req.Slug != nil {
		page.Slug = store.NormalizeSlugInput(*req.Slug)
	}
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Status != nil {
		page.Status = *req.Status
		if page.Status == content.StatusPublished && page.PublishedAt == nil {
			now := time.Now()
			page.PublishedAt = &now
		}
	}
	if req.Active != nil {
		page.Active = *req.Active
	}
	if req.MetaTitle != nil {
		page.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		page.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		page.MetaKeywords = *req.MetaKeywords
	}
	if req.CanonicalURL != nil {
		page.CanonicalURL = *req.CanonicalURL
	}
	if req.OGImage != nil {
		page.OGImage = *req.OGImage
	}

	if err := s.UpdatePage(c.Request.Context(), page); err != nil {
		fail(c, err)
		return
	}

	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toPageDTO(page, false)})
}

// DELETE /admin/pages/:id  (soft-disable, pages are never dropped)
func DeletePage(c *gin.Context) {
	s := store.New(database.DB)
	if err := s.DisablePage(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /admin/pages/:id/blocks
func CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	s := store.New(database.DB)
	block, err := s.CreateBlock(c.Request.Context(), c.Param("id"), req.Type)
	if err != nil {
		fail(c, err)
		return
	}

	invalidate()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": BlockDTO{
		ID:       block.ID,
		Type:     block.Type,
		Position: block.Position,
		Visible:  block.Visible,
		Content:  block.Content,
	}})
}

// PUT /admin/blocks/:id
func UpdateBlock(c *gin.Context) {
	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	s := store.New(database.DB)
	ctx := c.Request.Context()
	blockID := c.Param("id")

	if req.Content != nil {
		if err := s.UpdateBlockContent(ctx, blockID, req.Content); err != nil {
			fail(c, err)
			return
		}
	}
	if req.Visible != nil {
		if err := s.SetBlockVisibility(ctx, blockID, *req.Visible); err != nil {
			fail(c, err)
			return
		}
	}

	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/blocks/:id
func DeleteBlock(c *gin.Context) {
	s := store.New(database.DB)
	if err := s.DeleteBlock(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /admin/pages/:id/blocks/reorder
func ReorderBlocks(c *gin.Context) {
	var req ReorderBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.BlockIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "block_ids required"})
		return
	}

	s := store.New(database.DB)
	if err := s.ReorderBlocks(c.Request.Context(), c.Param("id"), req.BlockIDs); err != nil {
		fail(c, err)
		return
	}

	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /admin/pages/:id/blocks/reindex
func ReindexBlocks(c *gin.Context) {
	s := store.New(database.DB)
	if err := s.ReindexPositions(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	invalidate()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
