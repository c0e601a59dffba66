package routes

import (
	adminapi "wellnesstal-backend/internal/api/admin"
	authapi "wellnesstal-backend/internal/api/auth"
	"wellnesstal-backend/internal/api/mediaapi"
	pagesapi "wellnesstal-backend/internal/api/pages"
	publicapi "wellnesstal-backend/internal/api/public"
	"wellnesstal-backend/internal/api/servicesapi"
	"wellnesstal-backend/internal/api/widgetapi"
	"wellnesstal-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// block/page mutations must drop cached rendered pages
	pagesapi.SetInvalidator(publicapi.InvalidateCache)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public read surface
	r.GET("/pages/:slug", publicapi.GetPage)
	r.GET("/sitemap.xml", publicapi.Sitemap)
	r.GET("/api/images/*path", mediaapi.Proxy)
	r.GET("/services", servicesapi.ListPublic)
	r.GET("/services/categories", servicesapi.ListCategories)
	r.GET("/widget/whatsapp", widgetapi.GetPublic)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/dashboard", adminapi.Dashboard)
	admin.POST("/normalize-urls", adminapi.NormalizeURLs)
	admin.GET("/seo", adminapi.GetGlobalSEO)
	admin.PUT("/seo", adminapi.UpdateGlobalSEO)
	admin.POST("/change-password", authapi.ChangePassword)

	admin.GET("/pages", pagesapi.ListPages)
	admin.POST("/pages", pagesapi.CreatePage)
	admin.GET("/pages/:id", pagesapi.GetPage)
	admin.PUT("/pages/:id", pagesapi.UpdatePage)
	admin.DELETE("/pages/:id", pagesapi.DeletePage)

	admin.POST("/pages/:id/blocks", pagesapi.CreateBlock)
	admin.PUT("/pages/:id/blocks/reorder", pagesapi.ReorderBlocks)
	admin.POST("/pages/:id/blocks/reindex", pagesapi.ReindexBlocks)
	admin.PUT("/blocks/:id", pagesapi.UpdateBlock)
	admin.DELETE("/blocks/:id", pagesapi.DeleteBlock)

	admin.POST("/media", mediaapi.Upload)
	admin.GET("/media", mediaapi.List)
	admin.PUT("/media/:id", mediaapi.Update)
	admin.DELETE("/media/:id", mediaapi.Delete)

	admin.POST("/services", servicesapi.CreateService)
	admin.PUT("/services/:id", servicesapi.UpdateService)
	admin.DELETE("/services/:id", servicesapi.DeleteService)
	admin.POST("/services/categories", servicesapi.CreateCategory)
	admin.PUT("/services/categories/:id", servicesapi.UpdateCategory)
	admin.DELETE("/services/categories/:id", servicesapi.DeleteCategory)

	admin.GET("/widget/whatsapp", widgetapi.Get)
	admin.PUT("/widget/whatsapp", widgetapi.Update)
}
