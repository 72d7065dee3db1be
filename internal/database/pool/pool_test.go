package pool

import (
	"testing"
	"time"

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

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{MaxOpenConns: 10, MaxIdleConns: 2}},
		{name: "idle equals open", cfg: Config{MaxOpenConns: 5, MaxIdleConns: 5}},
		{name: "zero open", cfg: Config{MaxOpenConns: 0}, wantErr: "MaxOpenConns"},
		{name: "negative open", cfg: Config{MaxOpenConns: -1}, wantErr: "MaxOpenConns"},
		{name: "negative idle", cfg: Config{MaxOpenConns: 10, MaxIdleConns: -1}, wantErr: "MaxIdleConns"},
		{name: "idle above open", cfg: Config{MaxOpenConns: 5, MaxIdleConns: 10}, wantErr: "cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("applies limits", func(t *testing.T) {
		db := openTestDB(t)
		err := Apply(db, Config{
			MaxOpenConns:    7,
			MaxIdleConns:    3,
			ConnMaxLifetime: time.Minute,
			ConnMaxIdleTime: time.Minute,
		})
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("rejects invalid limits without touching the pool", func(t *testing.T) {
		db := openTestDB(t)
		err := Apply(db, Config{MaxOpenConns: 0})
		assert.Error(t, err)
	})
}
