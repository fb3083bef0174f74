package persistence

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenInMemory opens a migrated SQLite database held in memory until the
// returned handle is closed. Handles opened with the same name share one
// database.
//
// SQLite allows a single writer, so the pool is limited to one connection.
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// NewInMemoryUnitOfWorkFactory opens the in-memory database name and returns
// a unit of work factory over it.
func NewInMemoryUnitOfWorkFactory(name string) (*GormUnitOfWorkFactory, error) {
	db, err := OpenInMemory(name)
	if err != nil {
		return nil, err
	}
	return NewGormUnitOfWorkFactory(db), nil
}
