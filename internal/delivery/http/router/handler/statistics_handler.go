package handler

import (
	"log/slog"
	"net/http"

	"starfund/internal/delivery/http/response"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"

	"github.com/labstack/echo/v4"
)

// StatisticsHandler serves the /statistics routes.
type StatisticsHandler struct {
	stats  repository.StatisticsProvider
	logger *slog.Logger
}

// NewStatisticsHandler is the constructor for StatisticsHandler, injected by Fx.
func NewStatisticsHandler(stats repository.StatisticsProvider, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, logger: logger}
}

// Overall returns the platform-wide summary.
func (h *StatisticsHandler) Overall(c echo.Context) error {
	stats, err := h.stats.Overall(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stats)
}

// Investor returns one investor's summary.
func (h *StatisticsHandler) Investor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.stats.Investor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stats)
}

// Startup returns one founder's summary.
func (h *StatisticsHandler) Startup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.stats.Startup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, stats)
}
