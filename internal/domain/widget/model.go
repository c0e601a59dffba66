package widget

import "time"

const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// WhatsAppWidget is a single-row table holding the floating chat
// button configuration shown on the public site.
type WhatsAppWidget struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Enabled   bool   `gorm:"not null;default:false" json:"enabled"`
	Phone     string `json:"phone"`
	Greeting  string `json:"greeting"`
	Position  string `gorm:"not null;default:'right'" json:"position"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatarUrl"`

	UpdatedAt time.Time `json:"updated_at"`
}
