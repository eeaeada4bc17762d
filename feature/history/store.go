package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the recorded outcome of a scan.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusPending Status = "pending"
)

// Entry is one recorded scan outcome.
type Entry struct {
	// ID is assigned by the store; callers never supply one.
	ID string `json:"id"`

	// Code is the scanned LPO number.
	Code string `json:"code"`

	// Status is success, error, or pending.
	Status Status `json:"status"`

	// Timestamp is when the scan happened.
	Timestamp time.Time `json:"timestamp"`

	// Metadata carries opaque context, e.g. the batch session or a
	// rejection reason.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Store is the bounded, most-recent-first scan history log.
//
// All mutations are serialized by a mutex: the log is the one piece of shared
// mutable state in the portal, and the capacity invariant (never more than
// maxSize entries after an append returns) must hold under concurrent use.
type Store struct {
	mu      sync.Mutex
	medium  Medium
	maxSize int
	entries []Entry // most recent first
}

// NewStore creates a history store over the given medium, loading whatever
// the medium already holds. maxSize <= 0 falls back to DefaultMaxSize.
func NewStore(medium Medium, maxSize int) (*Store, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	entries, err := medium.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) > maxSize {
		entries = entries[:maxSize]
	}

	return &Store{
		medium:  medium,
		maxSize: maxSize,
		entries: entries,
	}, nil
}

// Append records a scan outcome at the head of the log, assigning a unique id
// and defaulting the timestamp to now. Once the log is at capacity the oldest
// entry is evicted.
func (s *Store) Append(entry Entry) (Entry, error) {
	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[:s.maxSize]
	}

	if err := s.medium.Save(s.entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Remove deletes the entry with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept

	if !removed {
		return nil
	}
	return s.medium.Save(s.entries)
}

// Clear empties the log. Destructive and unconditional; confirmation of
// intent belongs to the caller-facing layer.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.medium.Clear()
}

// Recent returns the first limit entries, most recent first, or the whole
// log when limit <= 0.
func (s *Store) Recent(limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

// ByDate returns the entries whose timestamp falls within the given calendar
// day, inclusive on both ends, in the log's most-recent-first order.
func (s *Store) ByDate(day time.Time) []Entry {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entry
	for _, e := range s.entries {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
