package http

import (
	"encoding/csv"
	"net/http"
	"strings"

	"covenant-command-center/internal/domain/covenant"
	covenantuc "covenant-command-center/internal/usecase/covenant"

	"github.com/labstack/echo/v4"
)

const exportFileName = "covenant_status.csv"

type CovenantHandler struct{ uc *covenantuc.Usecase }

func NewCovenantHandler(uc *covenantuc.Usecase) *CovenantHandler { return &CovenantHandler{uc: uc} }

// queryList reads a multi-value query param; both ?status=A&status=B and
// ?status=A,B work.
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func covenantFilter(c echo.Context) covenant.Filter {
	var f covenant.Filter
	for _, s := range queryList(c, "status") {
		f.Statuses = append(f.Statuses, covenant.Status(strings.ToUpper(s)))
	}
	f.DealNames = queryList(c, "loan")
	for _, t := range queryList(c, "type") {
		f.Types = append(f.Types, covenant.Type(t))
	}
	return f
}

func (h *CovenantHandler) ListCovenants(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context(), covenantFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CovenantHandler) ExportCovenants(c echo.Context) error {
	table, err := h.uc.Export(c.Request().Context(), covenantFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFileName+`"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(table.Header); err != nil {
		return err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return err
	}
	return w.Error()
}

type createCovenantReq struct {
	Name             string  `json:"covenant_name"     validate:"required,max=255"`
	Type             string  `json:"covenant_type"     validate:"required,covtype"`
	ThresholdText    string  `json:"threshold_text"    validate:"max=64"`
	CurrentValue     *string `json:"current_value"     validate:"omitempty,max=64"`
	ComplianceStatus string  `json:"compliance_status" validate:"omitempty,covstatus"`
	SourceDocument   string  `json:"source_document"   validate:"max=255"`
}

func (h *CovenantHandler) CreateCovenant(c echo.Context) error {
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return badID(c, "loan_id")
	}
	var req createCovenantReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), loanID, covenantuc.CreateCovenantInput{
		Name:             req.Name,
		Type:             covenant.Type(req.Type),
		ThresholdText:    req.ThresholdText,
		CurrentValue:     req.CurrentValue,
		ComplianceStatus: covenant.Status(req.ComplianceStatus),
		SourceDocument:   req.SourceDocument,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
