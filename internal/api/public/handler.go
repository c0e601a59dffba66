package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/cache"
	"wellnesstal-backend/internal/render"
	"wellnesstal-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const pageCacheTTL = 5 * time.Minute

var pageCache cache.PageCache = cache.Noop{}

// SetCache wires the render cache at startup; without it every request
// renders from the database.
func SetCache(c cache.PageCache) {
	if c != nil {
		pageCache = c
	}
}

// InvalidateCache is handed to the admin packages so content mutations
// drop stale rendered pages.
func InvalidateCache() {
	if err := pageCache.InvalidateAll(context.Background()); err != nil {
		logrus.WithError(err).Warn("failed to invalidate page cache")
	}
}

// GET /pages/:slug
//
// Read path fails soft: anything that cannot be resolved is a plain
// 404, the caller renders its own not-found page.
func GetPage(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	if doc, err := pageCache.GetPage(ctx, slug); err == nil && doc != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
		return
	} else if err != nil {
		logrus.WithError(err).Warn("page cache read failed")
	}

	s := store.New(database.DB)
	page, err := s.GetPublishedPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load page"})
		return
	}

	blocks, err := s.ListVisibleBlocks(ctx, page.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load blocks"})
		return
	}

	global, err := s.GlobalSEO(ctx)
	if err != nil {
		logrus.WithError(err).Warn("failed to load global seo settings")
	}

	doc := render.New(config.PUBLIC_BASE_URL).Render(page, blocks, global)

	if err := pageCache.SetPage(ctx, slug, doc, pageCacheTTL); err != nil {
		logrus.WithError(err).Warn("page cache write failed")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}
