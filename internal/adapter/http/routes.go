package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health    *Handler
	Dashboard *DashboardHandler
	Loans     *LoanHandler
	Covenants *CovenantHandler
	Alerts    *AlertHandler
	Uploads   *UploadHandler
}

// Register mounts every route. idem guards the upload endpoint; pass nil
// to mount it unguarded.
func Register(e *echo.Echo, h Handlers, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api/v1")

	api.GET("/dashboard", h.Dashboard.Dashboard)
	api.GET("/dashboard/banner", h.Dashboard.Banner)
	api.GET("/portfolio/stats", h.Dashboard.PortfolioStats)

	api.GET("/loans", h.Loans.ListLoans)
	api.POST("/loans", h.Loans.CreateLoan)
	api.GET("/loans/:loan_id", h.Loans.GetLoan)
	api.PATCH("/loans/:loan_id/status", h.Loans.UpdateLoanStatus)
	api.GET("/loans/:loan_id/financials", h.Loans.ListFinancials)
	api.POST("/loans/:loan_id/covenants", h.Covenants.CreateCovenant)

	api.GET("/covenants", h.Covenants.ListCovenants)
	api.GET("/covenants/export", h.Covenants.ExportCovenants)

	api.GET("/alerts", h.Alerts.ListAlerts)
	api.GET("/alerts/summary", h.Alerts.AlertSummary)
	api.GET("/alerts/recent", h.Alerts.RecentAlerts)
	api.POST("/alerts/:alert_id/resolve", h.Alerts.ResolveAlert)
	api.POST("/alerts/:alert_id/dismiss", h.Alerts.DismissAlert)

	if idem != nil {
		api.POST("/uploads", h.Uploads.SubmitFinancials, idem)
	} else {
		api.POST("/uploads", h.Uploads.SubmitFinancials)
	}
}
