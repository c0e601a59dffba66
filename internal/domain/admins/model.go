package admins

import "time"

type AdminUser struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"not null;uniqueIndex:idx_admin_users_email"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
