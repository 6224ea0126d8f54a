package linecount

import (
	"errors"

	"line-counter/core/fault"
	"line-counter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const statusClientClosedRequest = 499

// Handler handles HTTP requests for line counts.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the line count routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/count", h.HandleCount)
}

// HandleCount counts the lines of one object: ?key= in the configured bucket,
// or the configured s3.filePath when key is absent.
func (h *Handler) HandleCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	rep, err := h.service.Count(c.Context(), c.Query("key"))
	if err != nil {
		fields := []zap.Field{zap.String("kind", fault.Kind(err)), zap.Error(err)}
		var runErr *RunError
		if errors.As(err, &runErr) {
			fields = append(fields, zap.Stringer("phase", runErr.Phase), zap.String("location", runErr.Location))
		}
		l.Error("Count failed", fields...)
		return c.Status(StatusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  fault.Kind(err),
		})
	}

	l.Info("Count completed", zap.String("location", rep.Location), zap.Uint64("lines", rep.Lines))
	return c.JSON(rep)
}

// StatusFor maps a run failure onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, fault.ErrConfiguration):
		return fiber.StatusBadRequest
	case errors.Is(err, fault.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, fault.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, fault.ErrCancelled):
		return statusClientClosedRequest
	case errors.Is(err, fault.ErrTransport):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
