// Package render composes the final public document for a page from
// its ordered, visible block list.
package render

import (
	"encoding/json"
	"strings"

	"wellnesstal-backend/internal/domain/content"

	"github.com/sirupsen/logrus"
)

// Meta is the resolved page metadata (title, description, social tags).
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Canonical   string `json:"canonical"`
	OGImage     string `json:"ogImage"`
}

// Document is a fully composed page.
type Document struct {
	Slug   string `json:"slug"`
	HTML   string `json:"html"`
	Meta   Meta   `json:"meta"`
	Blocks int    `json:"blocks"`
}

type Renderer struct {
	baseURL string
}

func New(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Render dispatches every block to its template and resolves the page
// metadata. Unknown block types are skipped with a warning, never fatal;
// a single bad block must not take the whole page down.
func (r *Renderer) Render(page *content.Page, blocks []content.Block, global *content.GlobalSEOSetting) *Document {
	var sb strings.Builder
	rendered := 0

	for _, b := range blocks {
		if b.Type == content.BlockSEO {
			// metadata only, nothing to draw
			continue
		}

		t, ok := blockTemplates[b.Type]
		if !ok {
			logrus.WithFields(logrus.Fields{"block": b.ID, "type": b.Type, "page": page.Slug}).
				Warn("skipping block with unknown type")
			continue
		}

		doc, err := content.DecodeContent(b.Type, b.Content)
		if err != nil {
			logrus.WithFields(logrus.Fields{"block": b.ID, "type": b.Type, "page": page.Slug}).
				WithError(err).Warn("skipping block with invalid content")
			continue
		}

		if err := t.Execute(&sb, doc); err != nil {
			logrus.WithFields(logrus.Fields{"block": b.ID, "type": b.Type, "page": page.Slug}).
				WithError(err).Warn("skipping block that failed to render")
			continue
		}
		sb.WriteString("\n")
		rendered++
	}

	return &Document{
		Slug:   page.Slug,
		HTML:   sb.String(),
		Meta:   r.resolveMeta(page, blocks, global),
		Blocks: rendered,
	}
}

// SEOBlock returns the page's seo block content, if it has one.
func SEOBlock(blocks []content.Block) *content.SEOContent {
	for _, b := range blocks {
		if b.Type != content.BlockSEO {
			continue
		}
		var seo content.SEOContent
		if err := json.Unmarshal(b.Content, &seo); err != nil {
			logrus.WithField("block", b.ID).WithError(err).Warn("unreadable seo block")
			return nil
		}
		return &seo
	}
	return nil
}

// resolveMeta picks metadata in the documented order: a dedicated seo
// block with useGlobalSEO=false wins, then the global SEO settings row,
// then the page's own meta fields.
func (r *Renderer) resolveMeta(page *content.Page, blocks []content.Block, global *content.GlobalSEOSetting) Meta {
	meta := Meta{
		Canonical: firstNonEmpty(page.CanonicalURL, content.BuildPublicURL(r.baseURL, page.Slug)),
	}

	if seo := SEOBlock(blocks); seo != nil && !seo.UseGlobalSEO {
		meta.Title = firstNonEmpty(seo.Title, page.MetaTitle, page.Title)
		meta.Description = firstNonEmpty(seo.Description, page.MetaDescription)
		meta.Keywords = firstNonEmpty(seo.Keywords, page.MetaKeywords)
		meta.OGImage = firstNonEmpty(seo.OGImage, page.OGImage)
		return meta
	}

	if global != nil {
		meta.Title = firstNonEmpty(global.SiteTitle, page.MetaTitle, page.Title)
		meta.Description = firstNonEmpty(global.SiteDescription, page.MetaDescription)
		meta.Keywords = firstNonEmpty(global.SiteKeywords, page.MetaKeywords)
		meta.OGImage = firstNonEmpty(global.OGImage, page.OGImage)
		return meta
	}

	meta.Title = firstNonEmpty(page.MetaTitle, page.Title)
	meta.Description = page.MetaDescription
	meta.Keywords = page.MetaKeywords
	meta.OGImage = page.OGImage
	return meta
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
