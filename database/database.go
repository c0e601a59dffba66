package database

import (
	"fmt"
	"log"
	"os"

	"wellnesstal-backend/internal/domain/admins"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/domain/media"
	"wellnesstal-backend/internal/domain/services"
	"wellnesstal-backend/internal/domain/widget"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// core content
		&content.Page{},
		&content.Block{},
		&content.GlobalSEOSetting{},

		// media
		&media.MediaFile{},

		// spa services
		&services.Category{},
		&services.Service{},

		// widgets
		&widget.WhatsAppWidget{},

		// admin accounts
		&admins.AdminUser{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
