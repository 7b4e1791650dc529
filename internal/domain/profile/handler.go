package profile

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mammoscan/mammoscan/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the medical history endpoints. Both require a
// bearer token.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/medical-history", h.Upsert)
	api.GET("/medical-history", h.Get)
}

func (h *Handler) Upsert(c echo.Context) error {
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	record, err := h.svc.Upsert(ctx, auth.UserIDFromContext(ctx), req)
	if err != nil {
		if errors.Is(err, ErrInvalidHistory) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record)
}

// Get returns the caller's history, or a JSON null when none exists.
func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	record, err := h.svc.Get(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, ErrInvalidHistory) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record)
}
