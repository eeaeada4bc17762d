package matching

import (
	"mosb-portal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for LPO reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliation")
	group.Get("/:orderId", h.HandleReconcile)
}

// HandleReconcile builds and returns the reconciliation report for one LPO.
// @Summary Reconcile an LPO
// @Description Compares expected purchase order lines against summed inbound receipts. Lookup is case-insensitive.
// @Tags reconciliation
// @Produce json
// @Param orderId path string true "LPO number"
// @Success 200 {object} reconcile.Report
// @Failure 404 {object} map[string]string "Unknown LPO number"
// @Router /reconciliation/{orderId} [get]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Reconcile(c.Context(), orderID)
	if err != nil {
		l.Error("Reconciliation failed", zap.String("order_id", orderID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "reconciliation failed"})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "lpo not found"})
	}

	return c.JSON(report)
}
