package batchscan

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"mosb-portal/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// exportPrefix is the bucket prefix all batch exports live under.
const exportPrefix = "exports/"

// Service combines the batch controller with the export storage.
type Service struct {
	controller *Controller
	client     storage.Client
	bucket     string
	logger     *zap.Logger
}

// NewService creates a new batch scan service.
func NewService(controller *Controller, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		controller: controller,
		client:     client,
		bucket:     bucket,
		logger:     logger,
	}
}

// Controller exposes the underlying session controller.
func (s *Service) Controller() *Controller {
	return s.controller
}

// Export renders the finished session's result as CSV and uploads it to the
// export bucket, returning the object name. The session must be stopped.
func (s *Service) Export(ctx context.Context, sessionID string) (string, error) {
	result, err := s.controller.Result(sessionID)
	if err != nil {
		return "", err
	}

	payload, err := BuildCSV(result)
	if err != nil {
		return "", err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	object := ExportObjectName(result)
	_, err = s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.Info("Batch export uploaded",
		zap.String("session_id", sessionID),
		zap.String("object", object),
	)
	return object, nil
}

// ListExports returns the object names of all uploaded batch exports.
func (s *Service) ListExports(ctx context.Context) ([]string, error) {
	names := []string{}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    exportPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", info.Err)
		}
		names = append(names, strings.TrimPrefix(info.Key, exportPrefix))
	}
	return names, nil
}

// FetchExport streams a previously uploaded export by its base name.
func (s *Service) FetchExport(ctx context.Context, name string) (io.ReadCloser, error) {
	// Names come from the URL; keep them inside the export prefix.
	object := exportPrefix + path.Base(name)
	return s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
}

// ensureBucket creates the export bucket on first use.
func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check export bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create export bucket: %w", err)
	}
	return nil
}
