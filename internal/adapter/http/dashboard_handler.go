package http

import (
	"net/http"

	"covenant-command-center/internal/usecase/banner"
	"covenant-command-center/internal/usecase/dashboard"
	"covenant-command-center/internal/usecase/portfolio"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboard *dashboard.Usecase
	portfolio *portfolio.Usecase
	banner    *banner.Usecase
}

func NewDashboardHandler(d *dashboard.Usecase, p *portfolio.Usecase, b *banner.Usecase) *DashboardHandler {
	return &DashboardHandler{dashboard: d, portfolio: p, banner: b}
}

// Dashboard accepts the same filters as the covenant list.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	dto, err := h.dashboard.Get(c.Request().Context(), covenantFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DashboardHandler) PortfolioStats(c echo.Context) error {
	s, err := h.portfolio.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *DashboardHandler) Banner(c echo.Context) error {
	b, err := h.banner.Current(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
