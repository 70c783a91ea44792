// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(sqlite.Open(":memory:"), zap.NewNop().Sugar())
	require.NoError(t, err)

	// every pooled connection would otherwise see its own empty database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gdb
}

// SeedUsers inserts users with the given emails and returns their ids in order.
func SeedUsers(t *testing.T, gdb *gorm.DB, emails ...string) []uint64 {
	t.Helper()

	ids := make([]uint64, len(emails))
	for i, email := range emails {
		u := db.User{Email: email, Password: "hash"}
		require.NoError(t, gdb.Create(&u).Error)
		ids[i] = u.ID
	}
	return ids
}
