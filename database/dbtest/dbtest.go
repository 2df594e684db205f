// Package dbtest 为测试提供内存 SQLite 数据库
package dbtest

import (
	"testing"
	"time"

	"expenses/clock"
	"expenses/config"
	"expenses/database"
	"expenses/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DefaultNow 测试默认的固定时间
var DefaultNow = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

// Open 打开已迁移的内存数据库，使用固定时钟
func Open(t *testing.T) (*gorm.DB, *clock.Fixed) {
	t.Helper()

	clk := &clock.Fixed{T: DefaultNow}
	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     "file::memory:",
		LogLevel: "silent",
	}, time.UTC, clk)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db, clk
}

// Categories 按顺序写入类别并返回
func Categories(t *testing.T, db *gorm.DB, names ...string) []models.Category {
	t.Helper()

	cats := make([]models.Category, 0, len(names))
	for _, name := range names {
		cat := models.Category{Name: name}
		require.NoError(t, db.Create(&cat).Error)
		cats = append(cats, cat)
	}
	return cats
}
