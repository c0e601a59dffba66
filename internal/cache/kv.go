package cache

import (
	"context"
	"time"

	"wellnesstal-backend/internal/render"
)

// PageCache stores rendered public pages keyed by slug. A nil-returning
// Get means miss; the caller renders and Sets.
type PageCache interface {
	GetPage(ctx context.Context, slug string) (*render.Document, error)
	SetPage(ctx context.Context, slug string, doc *render.Document, ttl time.Duration) error
	// InvalidateAll drops every cached page. Admin writes call this;
	// block edits can affect shared blocks like footers, so per-slug
	// invalidation is not worth the bookkeeping.
	InvalidateAll(ctx context.Context) error
}

// Noop is used when no redis address is configured.
type Noop struct{}

func (Noop) GetPage(context.Context, string) (*render.Document, error) { return nil, nil }
func (Noop) SetPage(context.Context, string, *render.Document, time.Duration) error {
	return nil
}
func (Noop) InvalidateAll(context.Context) error { return nil }
