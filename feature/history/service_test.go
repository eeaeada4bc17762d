package history

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSV(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	entries := []Entry{
		{Code: "LPO-2024-000002", Status: StatusError, Timestamp: at, Metadata: map[string]any{"reason": "format error"}},
		{Code: "LPO-2024-000001", Status: StatusSuccess, Timestamp: at},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "LPO Number,Scan Time,Status,Reason", lines[0])
	assert.Equal(t, "LPO-2024-000002,2024-06-01T10:30:00Z,ERROR,format error", lines[1])
	assert.Equal(t, "LPO-2024-000001,2024-06-01T10:30:00Z,SUCCESS,", lines[2])
}
