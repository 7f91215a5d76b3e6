package kvstore

import (
	"encoding/json"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record — одна логическая коллекция, JSON в колонке value.
type Record struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value []byte `json:"value"`
}

type Store struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func New(db *gorm.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{DB: db, Log: log}
}

// Get decodes the value stored under key into dest. It reports false when
// the key is absent or the stored value cannot be decoded; decode failures
// are logged and swallowed so the caller keeps its fallback value.
func (s *Store) Get(key string, dest any) bool {
	var rec Record
	if err := s.DB.First(&rec, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.Log.Error("storage read error", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(rec.Value, dest); err != nil {
		s.Log.Error("storage decode error", "key", key, "error", err)
		return false
	}
	return true
}

// Put encodes value and fully replaces whatever was stored under key.
func (s *Store) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := Record{Key: key, Value: data}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *Store) Delete(key string) error {
	return s.DB.Delete(&Record{}, "key = ?", key).Error
}
