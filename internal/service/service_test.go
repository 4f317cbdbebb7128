package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-catalog-api/internal/domain"
	"go-catalog-api/internal/storage"
	"go-catalog-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Author{}, &domain.Product{}, &domain.Gallery{},
	))
	return db
}

func newTestStore(t *testing.T) storage.ImageStore {
	t.Helper()
	return storage.NewDisk(t.TempDir())
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         "Testname",
		PasswordHash: utils.HashPassword("testpassword123"),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// imagePayload returns a base64-encoded 1x1 PNG, the smallest payload the
// content sniffer accepts.
func imagePayload(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
