package media

import "time"

type MediaFile struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Object key inside the storage bucket, e.g. "uploads/abc.jpg"
	Path string `gorm:"not null;uniqueIndex" json:"path"`
	// Canonical public URL, always {PUBLIC_BASE_URL}/api/images/{Path}
	URL string `gorm:"not null" json:"url"`

	OriginalName string `gorm:"not null" json:"original_name"`
	Size         int64  `gorm:"not null;default:0" json:"size"`
	MimeType     string `json:"mime_type"`
	Category     string `gorm:"index" json:"category"`
	Alt          string `json:"alt"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
