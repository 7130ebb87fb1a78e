package http

import (
	"net/http"
	"strings"

	"covenant-command-center/internal/domain/alert"
	alertuc "covenant-command-center/internal/usecase/alert"

	"github.com/labstack/echo/v4"
)

type AlertHandler struct{ uc *alertuc.Usecase }

func NewAlertHandler(uc *alertuc.Usecase) *AlertHandler { return &AlertHandler{uc: uc} }

func (h *AlertHandler) ListAlerts(c echo.Context) error {
	var f alert.Filter
	for _, t := range queryList(c, "type") {
		f.Types = append(f.Types, alert.Type(strings.ToUpper(t)))
	}
	f.Status = alert.Status(strings.TrimSpace(c.QueryParam("status")))
	rows, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AlertHandler) RecentAlerts(c echo.Context) error {
	rows, err := h.uc.Recent(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AlertHandler) AlertSummary(c echo.Context) error {
	s, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	alertID, err := pathID(c, "alert_id")
	if err != nil {
		return badID(c, "alert_id")
	}
	dto, err := h.uc.Resolve(c.Request().Context(), alertID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AlertHandler) DismissAlert(c echo.Context) error {
	alertID, err := pathID(c, "alert_id")
	if err != nil {
		return badID(c, "alert_id")
	}
	dto, err := h.uc.Dismiss(c.Request().Context(), alertID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
