package pages

import "encoding/json"

type BlockDTO struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position int             `json:"position"`
	Visible  bool            `json:"visible"`
	Content  json.RawMessage `json:"content"`
}

type PageDTO struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Active bool   `json:"active"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
	CanonicalURL    string `json:"canonical_url,omitempty"`
	OGImage         string `json:"og_image,omitempty"`

	Blocks []BlockDTO `json:"blocks,omitempty"`
}

type CreatePageRequest struct {
	Slug   string `json:"slug" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Status string `json:"status"`
}

type UpdatePageRequest struct {
	Slug   *string `json:"slug"`
	Title  *string `json:"title"`
	Status *string `json:"status"`
	Active *bool   `json:"active"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	CanonicalURL    *string `json:"canonical_url"`
	OGImage         *string `json:"og_image"`
}

type CreateBlockRequest struct {
	Type string `json:"type" binding:"required"`
}

type UpdateBlockRequest struct {
	Content json.RawMessage `json:"content"`
	Visible *bool           `json:"visible"`
}

type ReorderBlocksRequest struct {
	BlockIDs []string `json:"block_ids" binding:"required"` // ordered list
}
