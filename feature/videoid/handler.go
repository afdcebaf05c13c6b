package videoid

import (
	"bytes"

	"video-id-finder/core/logger"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/videoids")
	group.Post("/runs", h.HandleRun)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/latest", h.HandleLatest)
	group.Get("/runs/latest/accepted.csv", h.HandleLatestCSV)
	group.Get("/runs/:id/accepted.csv", h.HandleArchivedCSV)
}

// HandleRun runs a reconciliation and returns its report.
// @Summary Run Reconciliation
// @Description Matches every vendor file to a curriculum segment and returns the report. Concurrent calls share one run.
// @Tags videoids
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Run Report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /videoids/runs [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Run(c.UserContext())
	if err != nil {
		l.Error("Reconciliation run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleLatest returns the most recent report.
// @Summary Latest Report
// @Description Returns the report of the most recent run served by this process.
// @Tags videoids
// @Produce json
// @Success 200 {object} map[string]interface{} "Run Report"
// @Failure 404 {object} map[string]string "No run yet"
// @Security ApiKeyAuth
// @Router /videoids/runs/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	report, err := h.service.Latest()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleLatestCSV returns the accepted table of the most recent report.
// @Summary Latest Accepted Table
// @Description Returns the accepted matches of the most recent run as CSV.
// @Tags videoids
// @Produce text/csv
// @Success 200 {string} string "Accepted CSV"
// @Failure 404 {object} map[string]string "No run yet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /videoids/runs/latest/accepted.csv [get]
func (h *Handler) HandleLatestCSV(c *fiber.Ctx) error {
	report, err := h.service.Latest()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return sendCSV(c, buf.Bytes())
}

// HandleListRuns returns the ids of archived runs.
// @Summary List Archived Runs
// @Description Lists the run ids stored in the report bucket.
// @Tags videoids
// @Produce json
// @Success 200 {object} map[string][]string "Run ids"
// @Failure 404 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /videoids/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	runs, err := h.service.ListArchivedRuns(c.UserContext())
	if err != nil {
		return h.archiveError(c, err)
	}
	return c.JSON(fiber.Map{"runs": runs})
}

// HandleArchivedCSV returns the archived accepted table of one run.
// @Summary Archived Accepted Table
// @Description Returns the archived accepted matches of one run as CSV.
// @Tags videoids
// @Produce text/csv
// @Param id path string true "Run id"
// @Success 200 {string} string "Accepted CSV"
// @Failure 400 {object} map[string]string "Invalid run id"
// @Failure 404 {object} map[string]string "Run not found or archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /videoids/runs/{id}/accepted.csv [get]
func (h *Handler) HandleArchivedCSV(c *fiber.Ctx) error {
	data, err := h.service.ArchivedCSV(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.archiveError(c, err)
	}
	return sendCSV(c, data)
}

func (h *Handler) archiveError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrArchiveDisabled), errors.Is(err, ErrRunNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidRunID):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Archive request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func sendCSV(c *fiber.Ctx, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}
