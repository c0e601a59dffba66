package content

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug   string `gorm:"not null;uniqueIndex" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:'draft';index" json:"status"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	// SEO fallbacks, used only when the page has no dedicated seo block
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	CanonicalURL    string `json:"canonical_url"`
	OGImage         string `gorm:"column:og_image" json:"og_image"`

	PublishedAt *time.Time `json:"published_at,omitempty"`

	Blocks []Block `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PubliclyVisible reports whether the page may be served to anonymous
// visitors. Drafts and soft-disabled pages are never served.
func (p *Page) PubliclyVisible() bool {
	return p.Status == StatusPublished && p.Active
}

type Block struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID   string `gorm:"type:uuid;not null;index" json:"page_id"`
	Type     string `gorm:"not null;index" json:"type"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Visible  bool   `gorm:"not null;default:true" json:"visible"`

	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GlobalSEOSetting is a single-row table holding the site-wide SEO
// defaults that seo blocks with useGlobalSEO=true resolve to.
type GlobalSEOSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteTitle       string `json:"site_title"`
	SiteDescription string `json:"site_description"`
	SiteKeywords    string `json:"site_keywords"`
	OGImage         string `gorm:"column:og_image" json:"og_image"`
	CanonicalBase   string `json:"canonical_base"`

	UpdatedAt time.Time `json:"updated_at"`
}
