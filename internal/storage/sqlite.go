package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// record is a single key-value pair in the store.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLite is the sqlite-backed Store.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the sqlite database, migrates the schema and configures
// the connection pool.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(record{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Get returns the value stored under key. A missing key is not an error,
// it is reported through ok == false.
func (s *SQLite) Get(key string) (string, bool, error) {
	var r record
	err := s.db.First(&r, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeError(err)
	}

	return r.Value, true, nil
}

// Set writes the value under key, replacing any existing value.
func (s *SQLite) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record{Key: key, Value: value}).Error
	if err != nil {
		return storeError(err)
	}

	return nil
}

// SetAll writes all pairs in one transaction. Either every pair is
// persisted or none is.
func (s *SQLite) SetAll(pairs map[string]string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range pairs {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&record{Key: key, Value: value}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return storeError(err)
	}

	return nil
}

// Remove deletes the value stored under key. Removing a missing key is a
// no-op.
func (s *SQLite) Remove(key string) error {
	err := s.db.Delete(&record{}, "key = ?", key).Error
	if err != nil {
		return storeError(err)
	}

	return nil
}

// Clear deletes every record.
func (s *SQLite) Clear() error {
	err := s.db.Where("true").Delete(&record{}).Error
	if err != nil {
		return storeError(err)
	}

	return nil
}

// Keys returns every key in the store.
func (s *SQLite) Keys() ([]string, error) {
	keys := make([]string, 0)
	err := s.db.Model(&record{}).Order("key ASC").Pluck("key", &keys).Error
	if err != nil {
		return nil, storeError(err)
	}

	return keys, nil
}

// storeError logs the underlying database error and replaces it with a
// general one since callers can not provide the user with anything more
// helpful.
func storeError(err error) error {
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrStore
	}

	return fmt.Errorf("%w: %v", ErrStore, err)
}
