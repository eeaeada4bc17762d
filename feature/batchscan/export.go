package batchscan

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// scanTimeStep is the synthetic spacing between accepted rows in an export.
// The controller does not keep per-item timestamps; the export approximates
// them from the session start.
const scanTimeStep = 500 * time.Millisecond

// BuildCSV renders a finished batch result in the portal's export format:
// one SUCCESS row per accepted code with an approximated scan time, one
// ERROR row per rejected submission with its reason.
func BuildCSV(result *Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"LPO Number", "Scan Time", "Status", "Reason"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, code := range result.ScannedItems {
		at := result.StartedAt.Add(time.Duration(i) * scanTimeStep)
		if err := w.Write([]string{code, at.Format(time.RFC3339), "SUCCESS", ""}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	for _, item := range result.ErrorItems {
		if err := w.Write([]string{item.Code, "", "ERROR", item.Reason}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportObjectName returns the storage object name for a finished session's
// export, e.g. exports/batch_scan_2024-06-01_<session>.csv.
func ExportObjectName(result *Result) string {
	return fmt.Sprintf("exports/batch_scan_%s_%s.csv",
		result.EndedAt.Format("2006-01-02"), result.SessionID)
}
