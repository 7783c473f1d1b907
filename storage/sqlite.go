package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRow is the single-table layout for the SQLite backend: one row
// per collection holding the JSON document.
type collectionRow struct {
	Name string `gorm:"primaryKey"`
	Data []byte `gorm:"not null"`
}

func (collectionRow) TableName() string { return "collections" }

// SQLiteStore persists collections in a local SQLite database file via
// gorm. Each save upserts the collection's row in full, matching the
// replace semantics of the file backend.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// collections table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "./data/churchpro.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Driver() Driver { return DriverSQLite }

func (s *SQLiteStore) Load(collection string, out any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	var row collectionRow
	err := s.db.First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", collection, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", collection, err)
	}
	return nil
}

func (s *SQLiteStore) Save(collection string, v any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", collection, err)
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&collectionRow{Name: collection, Data: data}).Error
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", collection, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
