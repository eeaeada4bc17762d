package batchscan

import (
	"errors"
	"io"

	"mosb-portal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for batch scanning.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the batch scan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/batch")
	group.Post("/start", h.HandleStart)
	group.Get("/exports", h.HandleListExports)
	group.Get("/exports/:name", h.HandleFetchExport)
	group.Post("/:sessionId/scan", h.HandleScan)
	group.Post("/:sessionId/stop", h.HandleStop)
	group.Post("/:sessionId/auto", h.HandleStartAuto)
	group.Post("/:sessionId/export", h.HandleExport)
}

type startRequest struct {
	Capacity int `json:"capacity"`
}

type scanRequest struct {
	Code   string `json:"code"`
	Source Source `json:"source"`
}

// HandleStart opens a new batch session.
// @Summary Start a batch session
// @Description Creates a fresh batch scan session with the given capacity (default 50).
// @Tags batch
// @Accept json
// @Produce json
// @Param request body batchscan.startRequest false "Session options"
// @Success 201 {object} batchscan.Info
// @Router /batch/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	var req startRequest
	// An empty body means default capacity.
	_ = c.BodyParser(&req)

	session := h.service.Controller().Start(req.Capacity)
	return c.Status(fiber.StatusCreated).JSON(session.Info())
}

// HandleScan submits one scanned code to a session.
// @Summary Submit a scan
// @Description Validates one code against the session. Rejections are normal outcomes, not errors.
// @Tags batch
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body batchscan.scanRequest true "Scanned code"
// @Success 200 {object} batchscan.Outcome
// @Failure 404 {object} map[string]string "Unknown session"
// @Failure 409 {object} batchscan.Result "Session stopped or at capacity"
// @Router /batch/{sessionId}/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	id := c.Params("sessionId")
	l := logger.WithRayID(h.service.logger, c)

	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	source := req.Source
	if source == "" {
		source = SourceManual
	}

	outcome, err := h.service.Controller().Submit(id, req.Code, source)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrCapacityReached), errors.Is(err, ErrSessionStopped):
		if errors.Is(err, ErrSessionStopped) {
			// Submitting to a stopped session is a caller contract
			// violation; reject it loudly but keep serving.
			l.Warn("Scan submitted to stopped session", zap.String("session_id", id))
		}
		// The batch is finished; surface the final result, not a failure.
		result, rerr := h.service.Controller().Stop(id)
		if rerr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": rerr.Error()})
		}
		return c.Status(fiber.StatusConflict).JSON(result)
	case err != nil:
		l.Error("Scan submission failed", zap.String("session_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(outcome)
}

// HandleStop finalizes a session and returns its result.
// @Summary Stop a batch session
// @Description Stops the session and returns the batch result. Idempotent.
// @Tags batch
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} batchscan.Result
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /batch/{sessionId}/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	id := c.Params("sessionId")

	result, err := h.service.Controller().Stop(id)
	if errors.Is(err, ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// HandleStartAuto begins the synthetic auto-scan loop for a session.
// @Summary Start auto-scan
// @Description Starts a timed loop submitting synthetic codes until the session stops.
// @Tags batch
// @Param sessionId path string true "Session id"
// @Success 202 "Auto-scan running"
// @Failure 404 {object} map[string]string "Unknown session"
// @Failure 409 {object} map[string]string "Session stopped or auto-scan already running"
// @Router /batch/{sessionId}/auto [post]
func (h *Handler) HandleStartAuto(c *fiber.Ctx) error {
	id := c.Params("sessionId")

	err := h.service.Controller().StartAuto(id, nil)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSessionStopped), errors.Is(err, ErrAutoRunning):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// HandleExport uploads the finished session's CSV export.
// @Summary Export a batch result
// @Description Renders the finished session as CSV and uploads it to the export bucket.
// @Tags batch
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} map[string]string "Uploaded object name"
// @Failure 404 {object} map[string]string "Unknown session"
// @Failure 409 {object} map[string]string "Session still active"
// @Failure 502 {object} map[string]string "Storage failure"
// @Router /batch/{sessionId}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id := c.Params("sessionId")
	l := logger.WithRayID(h.service.logger, c)

	object, err := h.service.Export(c.Context(), id)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSessionActive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Batch export failed", zap.String("session_id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"object": object})
}

// HandleListExports lists uploaded batch exports.
// @Summary List batch exports
// @Tags batch
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} map[string]string "Storage failure"
// @Router /batch/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ListExports(c.Context())
	if err != nil {
		l.Error("Listing exports failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(names)
}

// HandleFetchExport streams one uploaded export.
// @Summary Download a batch export
// @Tags batch
// @Produce text/csv
// @Param name path string true "Export base name"
// @Success 200 {string} string "CSV content"
// @Failure 502 {object} map[string]string "Storage failure"
// @Router /batch/exports/{name} [get]
func (h *Handler) HandleFetchExport(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	reader, err := h.service.FetchExport(c.Context(), name)
	if err != nil {
		l.Error("Fetching export failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	defer reader.Close()

	payload, err := io.ReadAll(reader)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(payload)
}
