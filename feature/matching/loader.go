package matching

import (
	"fmt"
	"time"

	"mosb-portal/core/reconcile"
	"mosb-portal/feature/matching/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	service *Service
	handler *Handler
}

// NewFeature creates the matching feature on top of the given database.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	var cache *reconcile.Cache
	if cfg.CacheTTLSeconds > 0 {
		cache = reconcile.NewCache(time.Duration(cfg.CacheTTLSeconds) * time.Second)
	}

	svc := NewService(NewStore(db), cache, logger)
	return &Feature{
		db:      db,
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "matching"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the matching tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.db.AutoMigrate(&models.LpoItem{}, &models.InboundItem{}); err != nil {
		return fmt.Errorf("failed to migrate matching tables: %w", err)
	}
	f.handler.RegisterRoutes(app)
	return nil
}
