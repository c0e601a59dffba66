package public

import (
	"encoding/xml"
	"net/http"
	"time"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/render"
	"wellnesstal-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GET /sitemap.xml
//
// Lists published+active pages only. lastmod comes from published_at,
// falling back to updated_at; a page's seo block may override priority
// and change frequency.
func Sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	s := store.New(database.DB)

	pages, err := s.ListPublishedPages(ctx)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(pages)),
	}

	for i := range pages {
		page := &pages[i]

		lastMod := page.UpdatedAt
		if page.PublishedAt != nil {
			lastMod = *page.PublishedAt
		}

		entry := sitemapURL{
			Loc:        content.BuildPublicURL(config.PUBLIC_BASE_URL, page.Slug),
			LastMod:    lastMod.Format(time.RFC3339),
			ChangeFreq: "monthly",
			Priority:   0.5,
		}

		blocks, err := s.ListVisibleBlocks(ctx, page.ID)
		if err == nil {
			if seo := render.SEOBlock(blocks); seo != nil {
				if seo.SitemapPriority > 0 {
					entry.Priority = seo.SitemapPriority
				}
				if seo.SitemapChangeFrq != "" {
					entry.ChangeFreq = seo.SitemapChangeFrq
				}
			}
		}

		set.URLs = append(set.URLs, entry)
	}

	c.XML(http.StatusOK, set)
}
