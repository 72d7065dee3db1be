package migrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "custom/migrations")
		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate_NilDatabase(t *testing.T) {
	err := Migrate(nil)
	assert.ErrorContains(t, err, "database connection is nil")
}

func TestMigrate_MissingDirectory(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "/non/existent/path")

	err := Migrate(openTestDB(t))
	assert.ErrorContains(t, err, "migrations directory does not exist")
}

func TestMigrate_ClosedConnection(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, Migrate(db))
}

func TestMigrate_NonPostgresDatabase(t *testing.T) {
	// The postgres driver cannot attach to a sqlite connection.
	t.Setenv("MIGRATIONS_PATH", t.TempDir())

	err := Migrate(openTestDB(t))
	require.Error(t, err)
	assert.True(t,
		strings.Contains(err.Error(), "failed to create postgres driver") ||
			strings.Contains(err.Error(), "failed to create migrate instance"),
		"unexpected error: %s", err.Error())
}
