// Seeds a fresh database with the default site structure: the four
// standard pages with their starter blocks, the global SEO row, the
// WhatsApp widget row and the admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Safe to re-run; existing rows are left alone.
//
//	go run ./cmd/seed
package main

import (
	"context"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/admins"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/domain/widget"
	"wellnesstal-backend/internal/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type seedPage struct {
	slug   string
	title  string
	blocks []string
}

var defaultPages = []seedPage{
	{"home", "Willkommen im Wellnesstal", []string{
		content.BlockHero, content.BlockFeatures, content.BlockTestimonials,
		content.BlockCTA, content.BlockFooter, content.BlockSEO,
	}},
	{"services", "Unsere Anwendungen", []string{
		content.BlockHero, content.BlockPricing, content.BlockFAQ,
		content.BlockFooter, content.BlockSEO,
	}},
	{"contact", "Kontakt", []string{
		content.BlockHero, content.BlockContact,
		content.BlockFooter, content.BlockSEO,
	}},
	{"impressum", "Impressum", []string{
		content.BlockText, content.BlockFooter, content.BlockSEO,
	}},
}

func main() {
	config.LoadEnv()
	database.InitDB()

	ctx := context.Background()
	log := logrus.WithField("cmd", "seed")
	s := store.New(database.DB)

	for _, sp := range defaultPages {
		var count int64
		if err := database.DB.Model(&content.Page{}).Where("slug = ?", sp.slug).Count(&count).Error; err != nil {
			log.WithError(err).Fatal("failed to check pages")
		}
		if count > 0 {
			log.Infof("page %q exists, skipping", sp.slug)
			continue
		}
		page := &content.Page{Slug: sp.slug, Title: sp.title, Status: content.StatusDraft}
		if err := s.CreatePage(ctx, page); err != nil {
			log.WithField("slug", sp.slug).WithError(err).Fatal("failed to create page")
		}
		for _, bt := range sp.blocks {
			if _, err := s.CreateBlock(ctx, page.ID, bt); err != nil {
				log.WithField("slug", sp.slug).WithField("type", bt).WithError(err).Fatal("failed to create block")
			}
		}
		log.Infof("created page %q with %d blocks", sp.slug, len(sp.blocks))
	}

	seedGlobalSEO(log)
	seedWidget(log)
	seedAdmin(log)

	log.Info("seed complete")
}

func seedGlobalSEO(log *logrus.Entry) {
	var count int64
	if err := database.DB.Model(&content.GlobalSEOSetting{}).Count(&count).Error; err != nil {
		log.WithError(err).Fatal("failed to check global seo")
	}
	if count > 0 {
		log.Info("global seo row exists, skipping")
		return
	}
	row := content.GlobalSEOSetting{
		SiteTitle:       "Wellnesstal",
		SiteDescription: "Massagen, Sauna und Tagesspa im Wellnesstal",
		SiteKeywords:    "wellness, massage, sauna, spa",
		CanonicalBase:   config.PUBLIC_BASE_URL,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		log.WithError(err).Fatal("failed to create global seo row")
	}
	log.Info("created global seo row")
}

func seedWidget(log *logrus.Entry) {
	var count int64
	if err := database.DB.Model(&widget.WhatsAppWidget{}).Count(&count).Error; err != nil {
		log.WithError(err).Fatal("failed to check widget")
	}
	if count > 0 {
		log.Info("widget row exists, skipping")
		return
	}
	row := widget.WhatsAppWidget{
		Enabled:  false,
		Greeting: "Hallo! Wie können wir helfen?",
		Position: widget.PositionRight,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		log.WithError(err).Fatal("failed to create widget row")
	}
	log.Info("created widget row")
}

func seedAdmin(log *logrus.Entry) {
	if config.ADMIN_EMAIL == "" || config.ADMIN_PASSWORD == "" {
		log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	var count int64
	if err := database.DB.Model(&admins.AdminUser{}).Where("email = ?", config.ADMIN_EMAIL).Count(&count).Error; err != nil {
		log.WithError(err).Fatal("failed to check admin users")
	}
	if count > 0 {
		log.Infof("admin %q exists, skipping", config.ADMIN_EMAIL)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash admin password")
	}
	user := admins.AdminUser{Email: config.ADMIN_EMAIL, Password: string(hash), Role: "admin"}
	if err := database.DB.Create(&user).Error; err != nil {
		log.WithError(err).Fatal("failed to create admin user")
	}
	log.Infof("created admin %q", config.ADMIN_EMAIL)
}
