package history

import (
	"time"

	"mosb-portal/core/logger"
	"mosb-portal/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the scan history log.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Delete("/:id", h.HandleRemove)
	group.Delete("/", h.HandleClear)
}

// HandleList returns scan history entries.
// @Summary List scan history
// @Description Returns the most recent scan outcomes, optionally limited or filtered by day.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of entries (omit for the whole log)"
// @Param date query string false "Calendar day filter (YYYY-MM-DD)"
// @Success 200 {array} history.Entry
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid date, expected YYYY-MM-DD",
			})
		}
		return c.JSON(h.service.ByDate(day))
	}

	limit := utils.ToInt(c.Query("limit"))
	return c.JSON(h.service.Recent(limit))
}

// HandleRemove deletes a single history entry.
// @Summary Remove a history entry
// @Description Deletes one entry by id. Unknown ids are a no-op.
// @Tags history
// @Param id path string true "Entry id"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Remove(id); err != nil {
		l.Error("History remove failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClear wipes the entire history log.
// @Summary Clear scan history
// @Description Empties the log. Destructive; the caller confirms intent.
// @Tags history
// @Success 204 "Cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Clear(); err != nil {
		l.Error("History clear failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
