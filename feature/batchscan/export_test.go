package batchscan

import (
	"context"
	"strings"
	"testing"
	"time"

	"mosb-portal/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestBuildCSV(t *testing.T) {
	startedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	result := &Result{
		SessionID:    "abc",
		ScannedItems: []string{"LPO-2024-000001", "LPO-2024-000002", "LPO-2024-000003"},
		ErrorItems:   []RejectedItem{{Code: "LPO-24-1", Reason: ReasonFormatError}},
		SuccessCount: 3,
		ErrorCount:   1,
		StartedAt:    startedAt,
		EndedAt:      startedAt.Add(5 * time.Second),
	}

	payload, err := BuildCSV(result)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	assert.Equal(t, []string{
		"LPO Number,Scan Time,Status,Reason",
		"LPO-2024-000001,2024-06-01T08:00:00Z,SUCCESS,",
		// RFC3339 has second precision, so the 500ms step only shows up
		// on every other row.
		"LPO-2024-000002,2024-06-01T08:00:00Z,SUCCESS,",
		"LPO-2024-000003,2024-06-01T08:00:01Z,SUCCESS,",
		"LPO-24-1,,ERROR,format error",
	}, lines)
}

func TestExportObjectName(t *testing.T) {
	result := &Result{
		SessionID: "abc",
		EndedAt:   time.Date(2024, 6, 1, 8, 0, 5, 0, time.UTC),
	}
	assert.Equal(t, "exports/batch_scan_2024-06-01_abc.csv", ExportObjectName(result))
}

func TestService_Export(t *testing.T) {
	controller := NewController(nil, Config{}, zap.NewNop())
	session := controller.Start(0)
	_, err := controller.Submit(session.ID(), "LPO-2024-000001", SourceManual)
	assert.NoError(t, err)

	client := new(mocks.Client)
	svc := NewService(controller, client, "gate-exports", zap.NewNop())

	t.Run("Active Session Refused", func(t *testing.T) {
		_, err := svc.Export(context.Background(), session.ID())
		assert.ErrorIs(t, err, ErrSessionActive)
	})

	result, err := controller.Stop(session.ID())
	assert.NoError(t, err)

	t.Run("Uploads Finished Session", func(t *testing.T) {
		client.On("BucketExists", mock.Anything, "gate-exports").Return(false, nil).Once()
		client.On("MakeBucket", mock.Anything, "gate-exports", mock.Anything).Return(nil).Once()
		client.On("PutObject", mock.Anything, "gate-exports", ExportObjectName(result),
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()

		object, err := svc.Export(context.Background(), session.ID())
		assert.NoError(t, err)
		assert.Equal(t, ExportObjectName(result), object)
		client.AssertExpectations(t)
	})
}

func TestService_ListExports(t *testing.T) {
	controller := NewController(nil, Config{}, zap.NewNop())
	client := new(mocks.Client)
	svc := NewService(controller, client, "gate-exports", zap.NewNop())

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "exports/batch_scan_2024-06-01_abc.csv"}
	ch <- minio.ObjectInfo{Key: "exports/batch_scan_2024-06-02_def.csv"}
	close(ch)
	client.On("ListObjects", mock.Anything, "gate-exports", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	names, err := svc.ListExports(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"batch_scan_2024-06-01_abc.csv",
		"batch_scan_2024-06-02_def.csv",
	}, names)
}
