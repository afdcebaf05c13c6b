package integrity

import (
	"video-id-finder/core/logger"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/archive", h.HandleArchiveCheck)
	group.Get("/upstream", h.HandleUpstreamCheck)
}

// HandleIntegrityCheck runs every check. It answers 503 when any of them fails.
// @Summary Run All Integrity Checks
// @Description Checks the curriculum schema, the report bucket and the remote services.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 503 {object} map[string]interface{} "Combined Report with failures"
// @Security ApiKeyAuth
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.UserContext())
	status := fiber.StatusOK
	if !report.Healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}

// HandleSchemaCheck checks the curriculum tables.
// @Summary Check Curriculum Schema
// @Description Checks that the curriculum tables carry the columns the resolver reads.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleArchiveCheck checks the report bucket. ?fix=true creates it when missing.
// @Summary Check Report Archive
// @Description Checks that the report bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} map[string]interface{} "Archive Report"
// @Failure 404 {object} map[string]string "Archive not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	ctx := c.UserContext()
	l := logger.WithRayID(h.service.logger, c)

	if c.QueryBool("fix") {
		if err := h.service.FixArchive(ctx); err != nil {
			return h.archiveError(c, l, err)
		}
	}

	report, err := h.service.CheckArchive(ctx)
	if err != nil {
		return h.archiveError(c, l, err)
	}
	return c.JSON(report)
}

// HandleUpstreamCheck checks that the remote services answer.
// @Summary Check Upstream Services
// @Description Checks that the transcription vendor and the attribute service answer.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Upstream Report"
// @Security ApiKeyAuth
// @Router /integrity/upstream [get]
func (h *Handler) HandleUpstreamCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"upstream": h.service.CheckUpstream(c.UserContext())})
}

func (h *Handler) archiveError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrArchiveNotConfigured) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Archive check failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
