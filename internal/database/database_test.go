package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newsboard/internal/config"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestConfigurePool(t *testing.T) {
	db := openTestDB(t)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           3,
		DBConnMaxLifetimeMinutes: 2,
	}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestConfigurePoolDefaults(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, configurePool(db, &config.Config{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "contents", "comments", "content_likes", "comment_likes", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestGormSlogLoggerLogMode(t *testing.T) {
	base := NewGormSlogLogger()
	silent := base.LogMode(logger.Silent)

	assert.Equal(t, logger.Warn, base.LogLevel)
	assert.Equal(t, logger.Silent, silent.(*GormSlogLogger).LogLevel)
}
