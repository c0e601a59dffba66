package mediaapi

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/media"
	"wellnesstal-backend/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// objectStore is the slice of the storage client the handlers touch.
type objectStore interface {
	Upload(key string, body io.Reader, contentType string) error
	Get(key string) (io.ReadCloser, string, error)
	Delete(key string) error
}

var store objectStore

// SetStorage wires the object-storage client at startup.
func SetStorage(s *storage.Client) {
	store = s
}

// canonicalURL is the single public form every stored asset is
// addressed by. Block content and media records never reference the
// storage provider directly.
func canonicalURL(key string) string {
	return config.PUBLIC_BASE_URL + "/api/images/" + key
}

var allowedMime = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/avif":      true,
	"image/gif":       true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// POST /admin/media  (multipart: file, category?, alt?)
func Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedMime[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("unsupported content type %q", contentType)})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unreadable file"})
		return
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := "uploads/" + uuid.NewString() + ext

	if err := store.Upload(key, src, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store file"})
		return
	}

	file := media.MediaFile{
		Path:         key,
		URL:          canonicalURL(key),
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		MimeType:     contentType,
		Category:     c.PostForm("category"),
		Alt:          c.PostForm("alt"),
	}
	if err := database.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": file})
}

// GET /admin/media?category=
func List(c *gin.Context) {
	q := database.DB.Model(&media.MediaFile{}).Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var files []media.MediaFile
	if err := q.Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": files})
}

// PUT /admin/media/:id  (alt text / category only)
func Update(c *gin.Context) {
	var input struct {
		Alt      *string `json:"alt"`
		Category *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if input.Alt != nil {
		updates["alt"] = *input.Alt
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "nothing to update"})
		return
	}

	res := database.DB.Model(&media.MediaFile{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update media"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Media not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/media/:id
func Delete(c *gin.Context) {
	var file media.MediaFile
	if err := database.DB.First(&file, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load media"})
		return
	}

	// Row goes first. A failed object delete leaves an orphan in the
	// bucket; the reverse order would leave a record pointing at nothing.
	if err := database.DB.Delete(&media.MediaFile{}, "id = ?", file.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete record"})
		return
	}
	if err := store.Delete(file.Path); err != nil {
		logrus.WithField("path", file.Path).WithError(err).Warn("stored object not removed")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/images/*path
//
// The single canonical public form of any stored asset. Block content
// only ever references this path, never the storage provider.
func Proxy(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" || strings.Contains(key, "..") {
		c.Status(http.StatusBadRequest)
		return
	}

	body, contentType, err := store.Get(key)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if body == nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer body.Close()

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
