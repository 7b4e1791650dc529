package analysis

import (
	"fmt"
	"io"
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

// RegisterRoutes mounts the analysis endpoints. All require a bearer
// token.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/analyze-image", h.AnalyzeImage)
	api.POST("/risk-assessment", h.AssessRisk)
	api.GET("/analyses", h.List)
}

// AnalyzeImage accepts a multipart upload in the "file" field. Any
// failure past authentication surfaces as a 500 carrying the
// underlying message.
func (h *Handler) AnalyzeImage(c echo.Context) error {
	data, err := readUpload(c, "file")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error analyzing image: %v", err))
	}

	ctx := c.Request().Context()
	record, err := h.svc.AnalyzeImage(ctx, auth.UserIDFromContext(ctx), data)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error analyzing image: %v", err))
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) AssessRisk(c echo.Context) error {
	var req RiskAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	record, err := h.svc.AssessRisk(ctx, auth.UserIDFromContext(ctx), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error in risk assessment: %v", err))
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	records, err := h.svc.ListAnalyses(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func readUpload(c echo.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
