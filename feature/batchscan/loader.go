package batchscan

import (
	"mosb-portal/core/storage"
	"mosb-portal/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the batch scan feature. Scan outcomes are recorded in
// the given history store; exports are uploaded to the given bucket.
func NewFeature(hist *history.Store, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Feature {
	controller := NewController(hist, cfg, logger)
	svc := NewService(controller, client, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "batchscan"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
