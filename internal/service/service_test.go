package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = gormDB.AutoMigrate(
		&repository.User{},
		&repository.Project{},
		&repository.Tool{},
		&repository.Skill{},
	)
	require.NoError(t, err)
	return gormDB
}

// setCreatedAt pins a row's creation time so ordering tests are
// deterministic regardless of clock resolution.
func setCreatedAt(t *testing.T, db *gorm.DB, model interface{}, id string, at time.Time) {
	t.Helper()
	err := db.Model(model).Where("id = ?", id).Update("created_at", at).Error
	require.NoError(t, err)
}
