package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/domain/content"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&content.Page{}, &content.Block{}, &content.GlobalSEOSetting{}))
	return New(db)
}

func mustCreatePage(t *testing.T, s *Store, slug, status string, active bool) *content.Page {
	t.Helper()
	page := &content.Page{
		ID:     uuid.NewString(),
		Slug:   slug,
		Title:  slug,
		Status: status,
		Active: active,
	}
	require.NoError(t, s.DB().Create(page).Error)
	return page
}

func mustCreateBlock(t *testing.T, s *Store, pageID, blockType string, position int, visible bool) *content.Block {
	t.Helper()
	defaults, err := content.DefaultContent(blockType)
	require.NoError(t, err)
	block := &content.Block{
		ID:       uuid.NewString(),
		PageID:   pageID,
		Type:     blockType,
		Position: position,
		Visible:  visible,
		Content:  defaults,
	}
	require.NoError(t, s.DB().Create(block).Error)
	return block
}

func TestGetPublishedPageBySlug(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	mustCreatePage(t, s, "home", content.StatusPublished, true)
	mustCreatePage(t, s, "draft-page", content.StatusDraft, true)
	mustCreatePage(t, s, "disabled", content.StatusPublished, false)

	page, err := s.GetPublishedPageBySlug(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", page.Slug)

	// draft is not-found regardless of active
	_, err = s.GetPublishedPageBySlug(ctx, "draft-page")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// published but soft-disabled is not-found too
	_, err = s.GetPublishedPageBySlug(ctx, "disabled")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.GetPublishedPageBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListPublishedPagesExcludesDraftsAndInactive(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	mustCreatePage(t, s, "home", content.StatusPublished, true)
	mustCreatePage(t, s, "angebote", content.StatusPublished, true)
	mustCreatePage(t, s, "entwurf", content.StatusDraft, true)
	mustCreatePage(t, s, "abgeschaltet", content.StatusPublished, false)
	mustCreatePage(t, s, "entwurf-inaktiv", content.StatusDraft, false)

	pages, err := s.ListPublishedPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	// slug order, and every returned page passes the model predicate
	assert.Equal(t, "angebote", pages[0].Slug)
	assert.Equal(t, "home", pages[1].Slug)
	for i := range pages {
		assert.True(t, pages[i].PubliclyVisible(), pages[i].Slug)
	}
}

func TestListVisibleBlocksFiltersAndOrders(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "home", content.StatusPublished, true)
	mustCreateBlock(t, s, page.ID, content.BlockText, 2, true)
	mustCreateBlock(t, s, page.ID, content.BlockHero, 0, true)
	mustCreateBlock(t, s, page.ID, content.BlockGallery, 1, false)

	blocks, err := s.ListVisibleBlocks(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, content.BlockHero, blocks[0].Type)
	assert.Equal(t, content.BlockText, blocks[1].Type)
	for _, b := range blocks {
		assert.True(t, b.Visible)
	}
}

func TestCreatePageSlugConflict(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreatePage(ctx, &content.Page{ID: uuid.NewString(), Slug: "kontakt", Title: "Kontakt"}))

	err := s.CreatePage(ctx, &content.Page{ID: uuid.NewString(), Slug: "kontakt", Title: "Kontakt 2"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	err = s.CreatePage(ctx, &content.Page{ID: uuid.NewString(), Slug: "Bad Slug!", Title: "x"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateBlockUsesRegistryDefaults(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "preise", content.StatusDraft, true)

	first, err := s.CreateBlock(ctx, page.ID, content.BlockPricing)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	var doc content.PricingContent
	require.NoError(t, json.Unmarshal(first.Content, &doc))
	assert.NotNil(t, doc.Packages)
	assert.Empty(t, doc.Packages)

	second, err := s.CreateBlock(ctx, page.ID, content.BlockFAQ)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	_, err = s.CreateBlock(ctx, page.ID, "carousel3000")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateBlockContentValidatesSchema(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "faq", content.StatusDraft, true)
	block := mustCreateBlock(t, s, page.ID, content.BlockFAQ, 0, true)

	good := []byte(`{"heading":"FAQ","items":[{"question":"Öffnungszeiten?","answer":"Täglich 9-21 Uhr"}]}`)
	require.NoError(t, s.UpdateBlockContent(ctx, block.ID, good))

	var stored content.Block
	require.NoError(t, s.DB().First(&stored, "id = ?", block.ID).Error)
	var doc content.FAQContent
	require.NoError(t, json.Unmarshal(stored.Content, &doc))
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Öffnungszeiten?", doc.Items[0].Question)

	err := s.UpdateBlockContent(ctx, block.ID, []byte(`{"items":"not-a-list"}`))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = s.UpdateBlockContent(ctx, uuid.NewString(), good)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func positionsByType(t *testing.T, s *Store, pageID string) map[string]int {
	t.Helper()
	blocks, err := s.ListAllBlocks(context.Background(), pageID)
	require.NoError(t, err)
	out := make(map[string]int, len(blocks))
	for _, b := range blocks {
		out[b.Type] = b.Position
	}
	return out
}

func TestReindexPositionsRepairsDuplicates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "home", content.StatusPublished, true)
	// positions [0,0,1,3] for [hero,text,pricing,footer]
	mustCreateBlock(t, s, page.ID, content.BlockHero, 0, true)
	mustCreateBlock(t, s, page.ID, content.BlockText, 0, true)
	mustCreateBlock(t, s, page.ID, content.BlockPricing, 1, true)
	mustCreateBlock(t, s, page.ID, content.BlockFooter, 3, true)

	require.NoError(t, s.ReindexPositions(ctx, page.ID))

	got := positionsByType(t, s, page.ID)
	assert.Equal(t, map[string]int{
		content.BlockHero:    0,
		content.BlockText:    1,
		content.BlockPricing: 2,
		content.BlockFooter:  3,
	}, got)
}

func TestReindexPositionsDenseAndPinned(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "spa", content.StatusPublished, true)
	// footer and seo stuck in the middle, gaps everywhere
	mustCreateBlock(t, s, page.ID, content.BlockSEO, 1, true)
	mustCreateBlock(t, s, page.ID, content.BlockHero, 2, true)
	mustCreateBlock(t, s, page.ID, content.BlockFooter, 5, false)
	mustCreateBlock(t, s, page.ID, content.BlockGallery, 9, true)
	mustCreateBlock(t, s, page.ID, content.BlockText, 12, true)

	require.NoError(t, s.ReindexPositions(ctx, page.ID))

	blocks, err := s.ListAllBlocks(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	// dense 0..N-1
	for i, b := range blocks {
		assert.Equal(t, i, b.Position)
	}

	// non-pinned keep their relative order, pinned types at the end
	types := []string{blocks[0].Type, blocks[1].Type, blocks[2].Type, blocks[3].Type, blocks[4].Type}
	assert.Equal(t, []string{
		content.BlockHero, content.BlockGallery, content.BlockText,
		content.BlockFooter, content.BlockSEO,
	}, types)
}

func TestReindexPositionsIsStable(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "ok", content.StatusPublished, true)
	mustCreateBlock(t, s, page.ID, content.BlockHero, 0, true)
	mustCreateBlock(t, s, page.ID, content.BlockText, 1, true)
	mustCreateBlock(t, s, page.ID, content.BlockFooter, 2, true)

	before := positionsByType(t, s, page.ID)
	require.NoError(t, s.ReindexPositions(ctx, page.ID))
	require.NoError(t, s.ReindexPositions(ctx, page.ID))
	assert.Equal(t, before, positionsByType(t, s, page.ID))
}

func TestReorderBlocks(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "home", content.StatusPublished, true)
	hero := mustCreateBlock(t, s, page.ID, content.BlockHero, 0, true)
	text := mustCreateBlock(t, s, page.ID, content.BlockText, 1, true)
	cta := mustCreateBlock(t, s, page.ID, content.BlockCTA, 2, true)

	require.NoError(t, s.ReorderBlocks(ctx, page.ID, []string{cta.ID, hero.ID}))

	got := positionsByType(t, s, page.ID)
	// listed ids first in given order, unlisted appended after
	assert.Equal(t, 0, got[content.BlockCTA])
	assert.Equal(t, 1, got[content.BlockHero])
	assert.Equal(t, 2, got[content.BlockText])

	err := s.ReorderBlocks(ctx, page.ID, []string{uuid.NewString()})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = s.ReorderBlocks(ctx, page.ID, []string{hero.ID, hero.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_ = text
}

func TestDisablePageSoftDeletes(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	page := mustCreatePage(t, s, "alt", content.StatusPublished, true)
	require.NoError(t, s.DisablePage(ctx, page.ID))

	_, err := s.GetPublishedPageBySlug(ctx, "alt")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// row still exists
	var stored content.Page
	require.NoError(t, s.DB().First(&stored, "id = ?", page.ID).Error)
	assert.False(t, stored.Active)
}
