package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/testutil/loanmock"
	uc "covenant-command-center/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

func TestCreateLoan_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *domain.Agreement
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Agreement) error {
			l.ID = 1
			l.CreatedAt = time.Now().UTC()
			created = l
			return nil
		},
	}
	h := NewLoanHandler(uc.NewUsecase(repo, nil, nil, nil))

	reqBody := map[string]any{
		"deal_name":        "Acme Manufacturing Facility",
		"borrower_name":    "Acme Manufacturing Inc.",
		"principal_amount": 50000000,
		"interest_rate":    6.5,
		"origination_date": "2024-03-15",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got uc.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanID != 1 || got.Status != domain.StatusActive {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if created.OriginationDate.Format(time.DateOnly) != "2024-03-15" {
		t.Fatalf("origination date not parsed: %v", created.OriginationDate)
	}
}

func TestCreateLoan_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(uc.NewUsecase(&loanmock.Repo{}, nil, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", strings.NewReader(`{"deal_name":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestCreateLoan_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(uc.NewUsecase(&loanmock.Repo{}, nil, nil, nil)) // won't be called

	reqBody := map[string]any{
		"deal_name":        "",
		"borrower_name":    "Acme",
		"principal_amount": 5000000.001,
		"interest_rate":    -1,
		"status":           "Frozen",
		"origination_date": "15/03/2024",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	er := decodeError(t, rec)
	if er.Error != "validation failed" {
		t.Fatalf("error = %q, want %q", er.Error, "validation failed")
	}
	for field, msg := range map[string]string{
		"deal_name":        "is required",
		"principal_amount": "at most 2 decimal places",
		"interest_rate":    "greater than or equal to 0",
		"status":           "Paid Off",
		"origination_date": "validation failed",
	} {
		if !containsFieldMsg(er.Details, field, msg) {
			t.Fatalf("missing %s detail %q: %+v", field, msg, er.Details)
		}
	}
}

func TestGetLoan_BadAndMissingID(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Agreement, error) { return nil, domain.ErrNotFound },
	}
	h := NewLoanHandler(uc.NewUsecase(repo, nil, nil, nil))

	for id, want := range map[string]int{"abc": stdhttp.StatusBadRequest, "0": stdhttp.StatusBadRequest, "42": stdhttp.StatusNotFound} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/api/v1/loans/"+id, nil), rec)
		c.SetParamNames("loan_id")
		c.SetParamValues(id)
		if err := h.GetLoan(c); err != nil {
			t.Fatalf("GetLoan error: %v", err)
		}
		if rec.Code != want {
			t.Fatalf("id %q: status = %d, want %d", id, rec.Code, want)
		}
	}
}

func TestUpdateLoanStatus_RequiresStatus(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(uc.NewUsecase(&loanmock.Repo{}, nil, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/api/v1/loans/1/status", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues("1")

	if err := h.UpdateLoanStatus(c); err != nil {
		t.Fatalf("UpdateLoanStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !containsFieldMsg(decodeError(t, rec).Details, "status", "is required") {
		t.Fatalf("missing status detail")
	}
}
