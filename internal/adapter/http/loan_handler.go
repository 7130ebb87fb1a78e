package http

import (
	"net/http"
	"time"

	"covenant-command-center/internal/domain/loan"
	loanuc "covenant-command-center/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	DealName        string  `json:"deal_name"        validate:"required,max=255"`
	BorrowerName    string  `json:"borrower_name"    validate:"required,max=255"`
	PrincipalAmount float64 `json:"principal_amount" validate:"gt=0,dec2"`
	InterestRate    float64 `json:"interest_rate"    validate:"gte=0,lte=100"`
	Status          string  `json:"status"           validate:"omitempty,loanstatus"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	OriginationDate string `json:"origination_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	in := loanuc.CreateLoanInput{
		DealName:        req.DealName,
		BorrowerName:    req.BorrowerName,
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		Status:          loan.Status(req.Status),
	}
	if req.OriginationDate != "" {
		// already checked by the validator
		in.OriginationDate, _ = time.Parse(time.DateOnly, req.OriginationDate)
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return badID(c, "loan_id")
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required,loanstatus"`
}

func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return badID(c, "loan_id")
	}
	var req updateLoanStatusReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), loanID, loan.Status(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListFinancials(c echo.Context) error {
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return badID(c, "loan_id")
	}
	list, err := h.uc.ListSnapshots(c.Request().Context(), loanID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
