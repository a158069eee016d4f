package state

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartbytes/canteen/pkg/database"
)

// Record is one persisted store key in the database state driver.
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (Record) TableName() string { return "client_state" }

// dbRepository stores client state in a relational database. Shared kiosk
// deployments use this with a central postgres/mysql instead of per-host
// files.
type dbRepository struct {
	db *gorm.DB
}

func openDatabase() (Repository, error) {
	db, err := database.Open()
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("state: migrate: %w", err)
	}
	return &dbRepository{db: db}, nil
}

// NewDB wraps an existing gorm connection; used by tests with sqlite.
func NewDB(db *gorm.DB) (Repository, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("state: migrate: %w", err)
	}
	return &dbRepository{db: db}, nil
}

func (r *dbRepository) Load(key string) ([]byte, bool) {
	var rec Record
	err := r.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		// Unreadable state degrades to empty, same as the file driver.
		return nil, false
	}
	return rec.Value, true
}

func (r *dbRepository) Save(key string, data []byte) error {
	rec := Record{Key: key, Value: data, UpdatedAt: time.Now()}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("state: save %s: %w", key, err)
	}
	return nil
}

func (r *dbRepository) Delete(key string) error {
	err := r.db.Delete(&Record{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("state: delete %s: %w", key, err)
	}
	return nil
}
