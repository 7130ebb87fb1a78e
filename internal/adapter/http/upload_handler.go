package http

import (
	"net/http"

	"covenant-command-center/internal/usecase/upload"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct{ uc *upload.Usecase }

func NewUploadHandler(uc *upload.Usecase) *UploadHandler { return &UploadHandler{uc: uc} }

// Amounts are plain numbers in currency units; negatives are allowed since
// EBITDA and net worth can be negative.
type submitFinancialsReq struct {
	LoanID             uint64   `json:"loan_id"             validate:"required"`
	ReportingPeriod    string   `json:"reporting_period"    validate:"required,period"`
	TotalDebt          *float64 `json:"total_debt"          validate:"required,gte=0,dec2"`
	EBITDA             *float64 `json:"ebitda"              validate:"required,dec2"`
	InterestExpense    *float64 `json:"interest_expense"    validate:"required,gte=0,dec2"`
	CurrentAssets      *float64 `json:"current_assets"      validate:"required,gte=0,dec2"`
	CurrentLiabilities *float64 `json:"current_liabilities" validate:"required,gte=0,dec2"`
	NetWorth           *float64 `json:"net_worth"           validate:"required,dec2"`
}

func (h *UploadHandler) SubmitFinancials(c echo.Context) error {
	var req submitFinancialsReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Submit(c.Request().Context(), upload.SubmitInput{
		LoanID:             req.LoanID,
		ReportingPeriod:    req.ReportingPeriod,
		TotalDebt:          *req.TotalDebt,
		EBITDA:             *req.EBITDA,
		InterestExpense:    *req.InterestExpense,
		CurrentAssets:      *req.CurrentAssets,
		CurrentLiabilities: *req.CurrentLiabilities,
		NetWorth:           *req.NetWorth,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
