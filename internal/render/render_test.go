package render

import (
	"encoding/json"
	"strings"
	"testing"

	"wellnesstal-backend/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://wellnesstal.de"

func block(t *testing.T, blockType string, doc any) content.Block {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return content.Block{ID: blockType + "-1", Type: blockType, Visible: true, Content: raw}
}

func TestRenderComposesBlocksInOrder(t *testing.T) {
	page := &content.Page{Slug: "home", Title: "Wellnesstal"}
	blocks := []content.Block{
		block(t, content.BlockHero, content.HeroContent{Title: "Willkommen im Wellnesstal", ImageURL: base + "/api/images/uploads/hero.jpg"}),
		block(t, content.BlockText, content.TextContent{Heading: "Über uns", Body: "Ruhe und Erholung."}),
		block(t, content.BlockFooter, content.FooterContent{Text: "© Wellnesstal"}),
	}

	doc := New(base).Render(page, blocks, nil)

	assert.Equal(t, 3, doc.Blocks)
	assert.NotEqual(t, -1, strings.Index(doc.HTML, "Willkommen im Wellnesstal"))
	assert.Less(t, strings.Index(doc.HTML, "Willkommen im Wellnesstal"), strings.Index(doc.HTML, "Über uns"))
	assert.Less(t, strings.Index(doc.HTML, "Über uns"), strings.Index(doc.HTML, "© Wellnesstal"))
}

func TestRenderSkipsUnknownTypes(t *testing.T) {
	page := &content.Page{Slug: "home", Title: "Wellnesstal"}
	blocks := []content.Block{
		block(t, content.BlockText, content.TextContent{Body: "kept"}),
		{ID: "x", Type: "carousel3000", Visible: true, Content: json.RawMessage(`{}`)},
	}

	doc := New(base).Render(page, blocks, nil)

	assert.Equal(t, 1, doc.Blocks)
	assert.Contains(t, doc.HTML, "kept")
	assert.NotContains(t, doc.HTML, "carousel3000")
}

func TestRenderSkipsInvalidContent(t *testing.T) {
	page := &content.Page{Slug: "home", Title: "Wellnesstal"}
	blocks := []content.Block{
		{ID: "bad", Type: content.BlockFAQ, Visible: true, Content: json.RawMessage(`{"items":"nope"}`)},
		block(t, content.BlockText, content.TextContent{Body: "still here"}),
	}

	doc := New(base).Render(page, blocks, nil)

	assert.Equal(t, 1, doc.Blocks)
	assert.Contains(t, doc.HTML, "still here")
}

func TestRenderEscapesUserContent(t *testing.T) {
	page := &content.Page{Slug: "home", Title: "Wellnesstal"}
	blocks := []content.Block{
		block(t, content.BlockText, content.TextContent{Body: "<script>alert(1)</script>"}),
	}

	doc := New(base).Render(page, blocks, nil)

	assert.NotContains(t, doc.HTML, "<script>")
}

func TestMetaFromSEOBlockOverride(t *testing.T) {
	page := &content.Page{Slug: "spa", Title: "Spa", MetaTitle: "Page Meta", MetaDescription: "page desc"}
	global := &content.GlobalSEOSetting{SiteTitle: "Global", SiteDescription: "global desc"}
	blocks := []content.Block{
		block(t, content.BlockSEO, content.SEOContent{
			Title:        "Day Spa im Wellnesstal",
			Description:  "seo desc",
			UseGlobalSEO: false,
		}),
	}

	doc := New(base).Render(page, blocks, global)

	assert.Equal(t, "Day Spa im Wellnesstal", doc.Meta.Title)
	assert.Equal(t, "seo desc", doc.Meta.Description)
	// seo blocks draw nothing
	assert.Equal(t, 0, doc.Blocks)
}

func TestMetaFallsBackToGlobalThenPage(t *testing.T) {
	page := &content.Page{Slug: "spa", Title: "Spa Page", MetaDescription: "page desc"}
	global := &content.GlobalSEOSetting{SiteTitle: "Wellnesstal Tagesspa"}

	// seo block with useGlobalSEO=true defers to global settings
	blocks := []content.Block{
		block(t, content.BlockSEO, content.SEOContent{Title: "ignored", UseGlobalSEO: true}),
	}
	doc := New(base).Render(page, blocks, global)
	assert.Equal(t, "Wellnesstal Tagesspa", doc.Meta.Title)
	assert.Equal(t, "page desc", doc.Meta.Description)

	// no seo block, no global row: the page's own fields are used
	doc = New(base).Render(page, nil, nil)
	assert.Equal(t, "Spa Page", doc.Meta.Title)
	assert.Equal(t, "page desc", doc.Meta.Description)
}

func TestMetaCanonicalURL(t *testing.T) {
	doc := New(base).Render(&content.Page{Slug: "preise", Title: "Preise"}, nil, nil)
	assert.Equal(t, base+"/preise", doc.Meta.Canonical)

	doc = New(base).Render(&content.Page{Slug: "home", Title: "Home"}, nil, nil)
	assert.Equal(t, base+"/", doc.Meta.Canonical)

	doc = New(base).Render(&content.Page{Slug: "x", CanonicalURL: "https://example.org/x"}, nil, nil)
	assert.Equal(t, "https://example.org/x", doc.Meta.Canonical)
}

func TestEveryKnownTypeHasTemplateOrIsMetadata(t *testing.T) {
	for _, bt := range []string{
		content.BlockHero, content.BlockText, content.BlockFeatures, content.BlockPricing,
		content.BlockTestimonials, content.BlockFAQ, content.BlockGallery, content.BlockFooter,
		content.BlockContact, content.BlockCTA, content.BlockStats, content.BlockTeam,
		content.BlockVideo, content.BlockDivider, content.BlockEmbed,
	} {
		_, ok := blockTemplates[bt]
		assert.True(t, ok, "missing template for %s", bt)
	}
	_, ok := blockTemplates[content.BlockSEO]
	assert.False(t, ok, "seo is metadata, not a rendered block")
}
