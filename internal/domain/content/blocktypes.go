package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"wellnesstal-backend/internal/apperr"
)

// Block type enum. The set is closed: anything else is rejected at the
// write boundary and skipped by the renderer.
const (
	BlockHero         = "hero"
	BlockText         = "text"
	BlockFeatures     = "features"
	BlockPricing      = "pricing"
	BlockTestimonials = "testimonials"
	BlockFAQ          = "faq"
	BlockGallery      = "gallery"
	BlockFooter       = "footer"
	BlockSEO          = "seo"
	BlockContact      = "contact"
	BlockCTA          = "cta"
	BlockStats        = "stats"
	BlockTeam         = "team"
	BlockVideo        = "video"
	BlockDivider      = "divider"
	BlockEmbed        = "embed"
)

// ---------- typed content schemas

type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CTAText  string `json:"ctaText"`
	CTAURL   string `json:"ctaUrl"`
}

type TextContent struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
}

type FeaturesContent struct {
	Heading string        `json:"heading"`
	Items   []FeatureItem `json:"items"`
}

type PricingPackage struct {
	Name    string `json:"name"`
	Price   string `json:"price"`
	Period  string `json:"period"`
	CTAText string `json:"ctaText"`
}

type PricingContent struct {
	Heading  string           `json:"heading"`
	Packages []PricingPackage `json:"packages"`
}

type TestimonialItem struct {
	Author    string `json:"author"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
}

type TestimonialsContent struct {
	Heading string            `json:"heading"`
	Items   []TestimonialItem `json:"items"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQContent struct {
	Heading string    `json:"heading"`
	Items   []FAQItem `json:"items"`
}

type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type GalleryContent struct {
	Heading string         `json:"heading"`
	Images  []GalleryImage `json:"images"`
}

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type FooterContent struct {
	Text  string       `json:"text"`
	Links []FooterLink `json:"links"`
}

type SEOContent struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Keywords         string  `json:"keywords"`
	OGImage          string  `json:"ogImageUrl"`
	UseGlobalSEO     bool    `json:"useGlobalSEO"`
	SitemapPriority  float64 `json:"sitemapPriority,omitempty"`
	SitemapChangeFrq string  `json:"sitemapChangeFreq,omitempty"`
}

type ContactContent struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	MapURL  string `json:"mapUrl"`
}

type CTAContent struct {
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText"`
	ButtonURL  string `json:"buttonUrl"`
}

type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StatsContent struct {
	Items []StatItem `json:"items"`
}

type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
}

type TeamContent struct {
	Heading string       `json:"heading"`
	Members []TeamMember `json:"members"`
}

type VideoContent struct {
	VideoURL  string `json:"videoUrl"`
	PosterURL string `json:"posterUrl"`
	Caption   string `json:"caption"`
}

type DividerContent struct {
	Style string `json:"style"`
}

type EmbedContent struct {
	HTML    string `json:"html"`
	Caption string `json:"caption"`
}

// ---------- schema registry

// schemaRegistry maps each block type to a factory for its default
// content document. Factories return fresh values so callers can never
// share or mutate a registry-owned default.
var schemaRegistry = map[string]func() any{
	BlockHero:         func() any { return &HeroContent{} },
	BlockText:         func() any { return &TextContent{} },
	BlockFeatures:     func() any { return &FeaturesContent{Items: []FeatureItem{}} },
	BlockPricing:      func() any { return &PricingContent{Packages: []PricingPackage{}} },
	BlockTestimonials: func() any { return &TestimonialsContent{Items: []TestimonialItem{}} },
	BlockFAQ:          func() any { return &FAQContent{Items: []FAQItem{}} },
	BlockGallery:      func() any { return &GalleryContent{Images: []GalleryImage{}} },
	BlockFooter:       func() any { return &FooterContent{Links: []FooterLink{}} },
	BlockSEO:          func() any { return &SEOContent{UseGlobalSEO: true} },
	BlockContact:      func() any { return &ContactContent{} },
	BlockCTA:          func() any { return &CTAContent{} },
	BlockStats:        func() any { return &StatsContent{Items: []StatItem{}} },
	BlockTeam:         func() any { return &TeamContent{Members: []TeamMember{}} },
	BlockVideo:        func() any { return &VideoContent{} },
	BlockDivider:      func() any { return &DividerContent{Style: "line"} },
	BlockEmbed:        func() any { return &EmbedContent{} },
}

// pinnedToEnd lists block types that a position reindex always moves to
// the tail of the page, in this relative order.
var pinnedToEnd = []string{BlockFooter, BlockSEO}

func KnownType(blockType string) bool {
	_, ok := schemaRegistry[blockType]
	return ok
}

// PinnedRank returns the tail rank of structurally pinned block types.
// Non-pinned types return -1.
func PinnedRank(blockType string) int {
	for i, t := range pinnedToEnd {
		if t == blockType {
			return i
		}
	}
	return -1
}

// DefaultContent returns the default content document for a block type.
// Unknown types are rejected, never fabricated.
func DefaultContent(blockType string) (json.RawMessage, error) {
	factory, ok := schemaRegistry[blockType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown block type %q", apperr.ErrValidation, blockType)
	}
	buf, err := json.Marshal(factory())
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeContent validates a raw content document against the schema of
// its block type and returns the typed value.
func DecodeContent(blockType string, raw json.RawMessage) (any, error) {
	factory, ok := schemaRegistry[blockType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown block type %q", apperr.ErrValidation, blockType)
	}
	out := factory()
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return nil, fmt.Errorf("%w: %s content: %v", apperr.ErrValidation, blockType, err)
	}
	return out, nil
}
