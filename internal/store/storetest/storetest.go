// Package storetest opens an in-memory SQLite store for tests.
package storetest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleetdesk/internal/config"
	"fleetdesk/internal/store"
)

// OpenDB returns a migrated in-memory database that lives for the test.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// each connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Open returns a Store over OpenDB.
func Open(t testing.TB) *store.Store {
	t.Helper()
	return store.New(OpenDB(t))
}
