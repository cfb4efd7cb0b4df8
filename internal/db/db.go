package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/toxzak/teletextplus/internal/models"
)

// Init opens (or creates) the sqlite database at path and migrates the
// schema. The connection is returned rather than held globally so the
// composition root decides who gets it.
func Init(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(&models.CachedUser{}); err != nil {
		return nil, err
	}

	log.Println("database ready (sqlite)")
	return conn, nil
}
