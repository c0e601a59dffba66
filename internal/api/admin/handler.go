package admin

import (
	"net/http"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/domain/media"
	"wellnesstal-backend/internal/domain/services"
	"wellnesstal-backend/internal/normalize"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	TotalPages     int64 `json:"total_pages"`
	PublishedPages int64 `json:"published_pages"`
	TotalBlocks    int64 `json:"total_blocks"`
	TotalMedia     int64 `json:"total_media"`
	TotalServices  int64 `json:"total_services"`
}

// GET /admin/dashboard
func Dashboard(c *gin.Context) {
	var stats Stats
	database.DB.Model(&content.Page{}).Count(&stats.TotalPages)
	database.DB.Model(&content.Page{}).
		Where("status = ? AND active = true", content.StatusPublished).
		Count(&stats.PublishedPages)
	database.DB.Model(&content.Block{}).Count(&stats.TotalBlocks)
	database.DB.Model(&media.MediaFile{}).Count(&stats.TotalMedia)
	database.DB.Model(&services.Service{}).Count(&stats.TotalServices)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

type NormalizeReport struct {
	BlocksScanned  int      `json:"blocks_scanned"`
	BlocksChanged  int      `json:"blocks_changed"`
	FieldsChanged  int      `json:"fields_changed"`
	MalformedURLs  []string `json:"malformed_urls,omitempty"`
	FailedBlockIDs []string `json:"failed_block_ids,omitempty"`
	DryRun         bool     `json:"dry_run"`
}

// POST /admin/normalize-urls?dry_run=true
//
// On-demand run of the canonical URL rewrite over every block. One bad
// record never aborts the rest; failures are collected and reported.
func NormalizeURLs(c *gin.Context) {
	dryRun := c.Query("dry_run") == "true"
	n := normalize.New(config.PUBLIC_BASE_URL)

	var blocks []content.Block
	if err := database.DB.Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load blocks"})
		return
	}

	report := NormalizeReport{DryRun: dryRun}
	for _, b := range blocks {
		report.BlocksScanned++

		out, stats, err := n.Document(b.Content)
		if err != nil {
			logrus.WithField("block", b.ID).WithError(err).Warn("skipping block with unreadable content")
			report.FailedBlockIDs = append(report.FailedBlockIDs, b.ID)
			continue
		}
		report.MalformedURLs = append(report.MalformedURLs, stats.Malformed...)
		if stats.Changed == 0 {
			continue
		}

		report.FieldsChanged += stats.Changed
		report.BlocksChanged++

		if dryRun {
			continue
		}
		if err := database.DB.Model(&content.Block{}).
			Where("id = ?", b.ID).
			Update("content", []byte(out)).Error; err != nil {
			report.FailedBlockIDs = append(report.FailedBlockIDs, b.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
