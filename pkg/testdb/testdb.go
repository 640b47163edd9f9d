// Package testdb 为存储层与服务层测试提供独立的 SQLite 数据库。
package testdb

import (
	"Foodgram/pkg/database"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New 每个测试一个临时文件库，已完成建表
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "foodgram.db") +
		"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	opts := database.Options()
	opts.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), opts)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// SQLite 单写者，串行化连接避免 SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
