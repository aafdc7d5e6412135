// Package dbtest opens throwaway SQLite databases migrated with the banking
// schema, for tests that need a real store behind gorm.
package dbtest

import (
	"path/filepath"
	"testing"

	"banking_api/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated database in a file under t.TempDir.
// Foreign keys are enforced and writers take the lock at BEGIN so
// concurrent transactions queue on the busy timeout instead of deadlocking.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "bank.db") + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}
