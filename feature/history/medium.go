package history

import (
	"encoding/json"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storageKey is the single key the whole log is stored under, mirroring the
// one-blob shape of simple key-value media.
const storageKey = "lpo_scan_history"

// Medium is the persistence backend for the history log. It exposes
// whole-log load/save semantics so any key-value capable medium (memory,
// embedded database, remote store) can back the log without changing its
// logic.
type Medium interface {
	// Load returns the persisted log, most recent first. A missing log is
	// not an error; it loads as empty.
	Load() ([]Entry, error)
	// Save replaces the persisted log.
	Save(entries []Entry) error
	// Clear removes the persisted log entirely.
	Clear() error
}

// MemoryMedium keeps the log in process memory. Used by tests and by the
// batch-local history variant.
type MemoryMedium struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryMedium creates an empty in-memory medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{}
}

func (m *MemoryMedium) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryMedium) Save(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make([]Entry, len(entries))
	copy(m.entries, entries)
	return nil
}

func (m *MemoryMedium) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// KVRecord is the database row a GormMedium stores the serialized log in.
type KVRecord struct {
	Key   string `gorm:"column:k;primaryKey;size:191"`
	Value string `gorm:"column:v;type:text"`
}

// TableName overrides the table name for the portal key-value store.
func (KVRecord) TableName() string {
	return "portal_kv"
}

// GormMedium persists the log as a JSON blob in a key-value table, surviving
// process restarts.
type GormMedium struct {
	db *gorm.DB
}

// NewGormMedium creates a gorm-backed medium and ensures its table exists.
func NewGormMedium(db *gorm.DB) (*GormMedium, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history kv table: %w", err)
	}
	return &GormMedium{db: db}, nil
}

func (m *GormMedium) Load() ([]Entry, error) {
	var rec KVRecord
	err := m.db.First(&rec, "k = ?", storageKey).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(rec.Value), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode scan history: %w", err)
	}
	return entries, nil
}

func (m *GormMedium) Save(entries []Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode scan history: %w", err)
	}

	rec := KVRecord{Key: storageKey, Value: string(payload)}
	err = m.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save scan history: %w", err)
	}
	return nil
}

func (m *GormMedium) Clear() error {
	err := m.db.Delete(&KVRecord{}, "k = ?", storageKey).Error
	if err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	return nil
}
