package mediaapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStore struct {
	deleted   []string
	deleteErr error
	onDelete  func(key string)
}

func (f *fakeStore) Upload(string, io.Reader, string) error    { return nil }
func (f *fakeStore) Get(string) (io.ReadCloser, string, error) { return nil, "", nil }

func (f *fakeStore) Delete(key string) error {
	if f.onDelete != nil {
		f.onDelete(key)
	}
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

func setupMediaTest(t *testing.T) *fakeStore {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&media.MediaFile{}))
	database.DB = db

	fake := &fakeStore{}
	store = fake
	return fake
}

func TestCanonicalURL(t *testing.T) {
	config.PUBLIC_BASE_URL = "https://wellnesstal.de"

	assert.Equal(t,
		"https://wellnesstal.de/api/images/uploads/abc.jpg",
		canonicalURL("uploads/abc.jpg"))
	assert.Equal(t,
		"https://wellnesstal.de/api/images/uploads/tiefenentspannung.pdf",
		canonicalURL("uploads/tiefenentspannung.pdf"))
}

func TestDeleteRemovesRecordBeforeObject(t *testing.T) {
	fake := setupMediaTest(t)

	file := media.MediaFile{
		ID:           uuid.NewString(),
		Path:         "uploads/x.jpg",
		URL:          canonicalURL("uploads/x.jpg"),
		OriginalName: "x.jpg",
		MimeType:     "image/jpeg",
	}
	require.NoError(t, database.DB.Create(&file).Error)

	fake.onDelete = func(string) {
		// the record must already be gone when the object delete runs
		var count int64
		require.NoError(t, database.DB.Model(&media.MediaFile{}).
			Where("id = ?", file.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	r := gin.New()
	r.DELETE("/admin/media/:id", Delete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/media/"+file.ID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"uploads/x.jpg"}, fake.deleted)
}

func TestDeleteSucceedsWhenObjectDeleteFails(t *testing.T) {
	fake := setupMediaTest(t)
	fake.deleteErr = errors.New("bucket unreachable")

	file := media.MediaFile{
		ID:           uuid.NewString(),
		Path:         "uploads/y.png",
		URL:          canonicalURL("uploads/y.png"),
		OriginalName: "y.png",
		MimeType:     "image/png",
	}
	require.NoError(t, database.DB.Create(&file).Error)

	r := gin.New()
	r.DELETE("/admin/media/:id", Delete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/media/"+file.ID, nil))

	// record removal decides the outcome, the orphaned object is only logged
	assert.Equal(t, http.StatusOK, w.Code)
	var count int64
	require.NoError(t, database.DB.Model(&media.MediaFile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingMedia(t *testing.T) {
	fake := setupMediaTest(t)

	r := gin.New()
	r.DELETE("/admin/media/:id", Delete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/media/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, fake.deleted)
}
