package db

import (
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	instance *gorm.DB
	once     sync.Once
	initErr  error
)

// Init opens (or creates) the SQLite file at path on the first call and
// ensures the ideas schema exists. Every later call returns the same handle
// regardless of the path argument; the schema check is idempotent, so it is
// safe across restarts against an existing file.
func Init(path string) (*gorm.DB, error) {
	once.Do(func() {
		instance, initErr = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if initErr != nil {
			return
		}
		initErr = instance.AutoMigrate(&Idea{})
	})
	return instance, initErr
}
