package main

import (
	"log"
	"os"
	"time"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/api/mediaapi"
	publicapi "wellnesstal-backend/internal/api/public"
	routes "wellnesstal-backend/internal/app/http"
	"wellnesstal-backend/internal/cache"
	"wellnesstal-backend/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	storageClient, err := storage.NewClient()
	if err != nil {
		log.Fatal("❌ Failed to init object storage:", err)
	}
	mediaapi.SetStorage(storageClient)

	if config.REDIS_ADDR != "" {
		publicapi.SetCache(cache.NewRedisPageCache(config.REDIS_ADDR, config.REDIS_PASSWORD))
	}

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
