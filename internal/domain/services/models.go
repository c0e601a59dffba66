package services

import "time"

type Category struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug     string `gorm:"not null;uniqueIndex" json:"slug"`
	Name     string `gorm:"not null" json:"name"`
	Position int    `gorm:"not null;default:0;index" json:"position"`

	Services []Service `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CategoryID string `gorm:"type:uuid;not null;index" json:"category_id"`

	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Display values, not billing amounts. "ab 89 €" is a valid price.
	Price    string `json:"price"`
	Duration string `json:"duration"`

	ImageURL string `gorm:"column:image_url" json:"imageUrl"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Position int    `gorm:"not null;default:0;index" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
