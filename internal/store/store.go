// Package store is the persistence boundary for pages and blocks.
// Handlers and batch tools go through it instead of querying gorm
// directly, so publish gating and position invariants live in one place.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/domain/content"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that compose their own
// queries (media, services) without a second connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func publishedPagesQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&content.Page{}).
		Where("status = ? AND active = true", content.StatusPublished)
}

// GetPublishedPageBySlug returns a page only when it is published and
// active. Everything else is a not-found, including drafts.
func (s *Store) GetPublishedPageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var page content.Page
	err := publishedPagesQuery(s.db.WithContext(ctx)).
		First(&page, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: page %q", apperr.ErrNotFound, slug)
		}
		return nil, err
	}
	return &page, nil
}

// ListPublishedPages returns all publicly visible pages, used by the
// sitemap generator.
func (s *Store) ListPublishedPages(ctx context.Context) ([]content.Page, error) {
	var pages []content.Page
	err := publishedPagesQuery(s.db.WithContext(ctx)).
		Order("slug ASC").
		Find(&pages).Error
	return pages, err
}

// ListVisibleBlocks returns the render-ordered blocks of a page,
// hidden blocks excluded.
func (s *Store) ListVisibleBlocks(ctx context.Context, pageID string) ([]content.Block, error) {
	var blocks []content.Block
	err := s.db.WithContext(ctx).
		Where("page_id = ? AND visible = true", pageID).
		Order("position ASC").
		Find(&blocks).Error
	return blocks, err
}

// ListAllBlocks returns every block of a page regardless of visibility,
// for the admin editor and batch tooling.
func (s *Store) ListAllBlocks(ctx context.Context, pageID string) ([]content.Block, error) {
	var blocks []content.Block
	err := s.db.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("position ASC").
		Find(&blocks).Error
	return blocks, err
}

func (s *Store) GetPage(ctx context.Context, id string) (*content.Page, error) {
	var page content.Page
	err := s.db.WithContext(ctx).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&page, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: page %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &page, nil
}

func (s *Store) ListPages(ctx context.Context) ([]content.Page, error) {
	var pages []content.Page
	err := s.db.WithContext(ctx).Order("slug ASC").Find(&pages).Error
	return pages, err
}

func (s *Store) CreatePage(ctx context.Context, page *content.Page) error {
	if !content.ValidSlug(page.Slug) {
		return fmt.Errorf("%w: invalid slug %q", apperr.ErrValidation, page.Slug)
	}
	if page.Status == "" {
		page.Status = content.StatusDraft
	}
	if page.Status != content.StatusDraft && page.Status != content.StatusPublished {
		return fmt.Errorf("%w: invalid status %q", apperr.ErrValidation, page.Status)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&content.Page{}).
		Where("slug = ?", page.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: slug %q already exists", apperr.ErrConflict, page.Slug)
	}

	return s.db.WithContext(ctx).Create(page).Error
}

func (s *Store) UpdatePage(ctx context.Context, page *content.Page) error {
	if !content.ValidSlug(page.Slug) {
		return fmt.Errorf("%w: invalid slug %q", apperr.ErrValidation, page.Slug)
	}
	if page.Status != content.StatusDraft && page.Status != content.StatusPublished {
		return fmt.Errorf("%w: invalid status %q", apperr.ErrValidation, page.Status)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&content.Page{}).
		Where("slug = ? AND id <> ?", page.Slug, page.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: slug %q already exists", apperr.ErrConflict, page.Slug)
	}

	res := s.db.WithContext(ctx).Model(&content.Page{}).
		Where("id = ?", page.ID).
		Select("slug", "title", "status", "active",
			"meta_title", "meta_description", "meta_keywords",
			"canonical_url", "og_image", "published_at").
		Updates(page)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: page %s", apperr.ErrNotFound, page.ID)
	}
	return nil
}

// DisablePage soft-deletes a page. Pages are never physically removed
// in the normal flow.
func (s *Store) DisablePage(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&content.Page{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: page %s", apperr.ErrNotFound, id)
	}
	return nil
}

// CreateBlock appends a block of the given type to a page, seeded with
// the registry default content for that type.
func (s *Store) CreateBlock(ctx context.Context, pageID, blockType string) (*content.Block, error) {
	defaults, err := content.DefaultContent(blockType)
	if err != nil {
		return nil, err
	}

	var block *content.Block
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&content.Page{}).Where("id = ?", pageID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: page %s", apperr.ErrNotFound, pageID)
		}

		var next int
		row := tx.Model(&content.Block{}).
			Where("page_id = ?", pageID).
			Select("COALESCE(MAX(position)+1, 0)").
			Row()
		if err := row.Scan(&next); err != nil {
			return err
		}

		block = &content.Block{
			PageID:   pageID,
			Type:     blockType,
			Position: next,
			Visible:  true,
			Content:  defaults,
		}
		return tx.Create(block).Error
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

// UpdateBlockContent replaces a block's content document after
// validating it against the block type's schema.
func (s *Store) UpdateBlockContent(ctx context.Context, blockID string, raw []byte) error {
	var block content.Block
	if err := s.db.WithContext(ctx).First(&block, "id = ?", blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: block %s", apperr.ErrNotFound, blockID)
		}
		return err
	}

	if _, err := content.DecodeContent(block.Type, raw); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&content.Block{}).
		Where("id = ?", blockID).
		Update("content", raw).Error
}

func (s *Store) SetBlockVisibility(ctx context.Context, blockID string, visible bool) error {
	res := s.db.WithContext(ctx).Model(&content.Block{}).
		Where("id = ?", blockID).
		Update("visible", visible)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: block %s", apperr.ErrNotFound, blockID)
	}
	return nil
}

func (s *Store) DeleteBlock(ctx context.Context, blockID string) error {
	res := s.db.WithContext(ctx).Delete(&content.Block{}, "id = ?", blockID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: block %s", apperr.ErrNotFound, blockID)
	}
	return nil
}

// ReorderBlocks applies an explicit ordering from the editor. Blocks of
// the page not listed keep their relative order and are appended after
// the listed ones. Positions come out dense either way.
func (s *Store) ReorderBlocks(ctx context.Context, pageID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: block ids required", apperr.ErrValidation)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		blocks, err := loadBlocksOrdered(tx, pageID)
		if err != nil {
			return err
		}

		byID := make(map[string]content.Block, len(blocks))
		for _, b := range blocks {
			byID[b.ID] = b
		}

		target := make([]content.Block, 0, len(blocks))
		seen := make(map[string]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			b, ok := byID[id]
			if !ok {
				return fmt.Errorf("%w: block %s does not belong to page %s", apperr.ErrValidation, id, pageID)
			}
			if seen[id] {
				return fmt.Errorf("%w: block %s listed twice", apperr.ErrValidation, id)
			}
			seen[id] = true
			target = append(target, b)
		}
		for _, b := range blocks {
			if !seen[b.ID] {
				target = append(target, b)
			}
		}

		return applyPositions(tx, target)
	})
}

// ReindexPositions repairs a page's ordering: positions become a dense
// 0..N-1 sequence, the relative order of existing blocks is preserved,
// and structurally pinned types (footer, seo) move to the end. The full
// target mapping is computed before any write so no externally observed
// state ever holds duplicate positions.
func (s *Store) ReindexPositions(ctx context.Context, pageID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		blocks, err := loadBlocksOrdered(tx, pageID)
		if err != nil {
			return err
		}

		sort.SliceStable(blocks, func(i, j int) bool {
			ri, rj := content.PinnedRank(blocks[i].Type), content.PinnedRank(blocks[j].Type)
			if (ri >= 0) != (rj >= 0) {
				return rj >= 0 // non-pinned before pinned
			}
			if ri >= 0 && rj >= 0 && ri != rj {
				return ri < rj
			}
			return false // keep incoming order
		})

		return applyPositions(tx, blocks)
	})
}

func loadBlocksOrdered(tx *gorm.DB, pageID string) ([]content.Block, error) {
	var blocks []content.Block
	// created_at breaks position ties so a repair run is deterministic
	err := tx.Where("page_id = ?", pageID).
		Order("position ASC, created_at ASC, id ASC").
		Find(&blocks).Error
	return blocks, err
}

func applyPositions(tx *gorm.DB, ordered []content.Block) error {
	for i, b := range ordered {
		if b.Position == i {
			continue
		}
		if err := tx.Model(&content.Block{}).
			Where("id = ?", b.ID).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// GlobalSEO returns the site-wide SEO settings row, or nil when none
// has been seeded yet.
func (s *Store) GlobalSEO(ctx context.Context) (*content.GlobalSEOSetting, error) {
	var seo content.GlobalSEOSetting
	err := s.db.WithContext(ctx).First(&seo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seo, nil
}

// NormalizeSlugInput trims and lowercases an admin-supplied slug before
// validation, so "  Home " and "home" are the same page.
func NormalizeSlugInput(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
