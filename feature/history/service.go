package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"mosb-portal/core/utils"

	"go.uber.org/zap"
)

// Service exposes the history store to handlers and the CLI.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Recent returns the most recent entries; limit <= 0 returns the whole log.
func (s *Service) Recent(limit int) []Entry {
	return s.store.Recent(limit)
}

// ByDate returns the entries recorded on the given calendar day.
func (s *Service) ByDate(day time.Time) []Entry {
	return s.store.ByDate(day)
}

// Remove deletes one entry by id; unknown ids are a no-op.
func (s *Service) Remove(id string) error {
	return s.store.Remove(id)
}

// Clear wipes the whole log.
func (s *Service) Clear() error {
	s.logger.Warn("Clearing scan history", zap.Int("entries", s.store.Len()))
	return s.store.Clear()
}

// WriteCSV writes the given entries in the portal's export format.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"LPO Number", "Scan Time", "Status", "Reason"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		reason := ""
		if v, ok := e.Metadata["reason"]; ok && v != nil {
			reason = utils.ToString(v)
		}
		row := []string{
			e.Code,
			e.Timestamp.Format(time.RFC3339),
			strings.ToUpper(string(e.Status)),
			reason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
