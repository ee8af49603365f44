// Package store persists reservations and chat sessions in SQLite.
package store

import (
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps *gorm.DB to keep reservation and session logic in one place.
type Store struct {
	DB *gorm.DB
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.AutoMigrate(&Session{}, &Reservation{}); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}

	return &Store{DB: db}, nil
}
