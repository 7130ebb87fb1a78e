package covenant

import (
	"context"
	"errors"
	"testing"

	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
	"covenant-command-center/internal/testutil/covenantmock"
	"covenant-command-center/internal/testutil/loanmock"
	"covenant-command-center/internal/testutil/uowmock"
)

func strp(s string) *string { return &s }

func TestList_PassesFilterThrough(t *testing.T) {
	var got covenant.Filter
	repo := &covenantmock.Repo{
		ListRowsFn: func(_ context.Context, f covenant.Filter) ([]covenant.Row, error) {
			got = f
			return nil, nil
		},
	}
	uc := NewUsecase(repo, nil)

	f := covenant.Filter{
		Statuses:  []covenant.Status{covenant.StatusBreach},
		DealNames: []string{"Aerospace Credit Facility 2022"},
		Types:     []covenant.Type{covenant.TypeFinancial},
	}
	rows, err := uc.List(context.Background(), f)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
	if len(got.Statuses) != 1 || got.DealNames[0] != "Aerospace Credit Facility 2022" || got.Types[0] != covenant.TypeFinancial {
		t.Fatalf("filter not forwarded: %+v", got)
	}
}

func TestList_RejectsUnknownValues(t *testing.T) {
	uc := NewUsecase(&covenantmock.Repo{}, nil)
	ctx := context.Background()

	if _, err := uc.List(ctx, covenant.Filter{Statuses: []covenant.Status{"BROKEN"}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("status: want ErrInvalidInput, got %v", err)
	}
	if _, err := uc.List(ctx, covenant.Filter{Types: []covenant.Type{"Other"}}); !errors.Is(err, covenant.ErrInvalidType) {
		t.Errorf("type: want ErrInvalidType, got %v", err)
	}
}

func TestExport(t *testing.T) {
	repo := &covenantmock.Repo{
		ListRowsFn: func(context.Context, covenant.Filter) ([]covenant.Row, error) {
			return []covenant.Row{
				{DealName: "Aerospace", BorrowerName: "Aerospace Industries Inc", CovenantName: "Maximum Leverage Ratio",
					CovenantType: covenant.TypeFinancial, ComplianceStatus: covenant.StatusBreach,
					CurrentValue: strp("5.20x"), ThresholdText: "≤ 4.50x", SourceDocument: "Credit Agreement 2022.pdf"},
				{DealName: "Tech", CovenantName: "Minimum EBITDA", CovenantType: covenant.TypeFinancial,
					ComplianceStatus: covenant.StatusNotTested, ThresholdText: "≥ $5,000,000"},
			}, nil
		},
	}
	table, err := NewUsecase(repo, nil).Export(context.Background(), covenant.Filter{})
	if err != nil {
		t.Fatalf("Export err: %v", err)
	}
	if len(table.Header) != 8 || table.Header[0] != "Loan" {
		t.Fatalf("header = %v", table.Header)
	}
	if len(table.Rows) != 2 || table.Rows[0][5] != "5.20x" || table.Rows[1][5] != "N/A" {
		t.Fatalf("rows = %v", table.Rows)
	}
}

func newCreateUsecase(l *loan.Agreement, created *[]*covenant.Covenant) *Usecase {
	covs := &covenantmock.Repo{
		CreateFn: func(_ context.Context, c *covenant.Covenant) error {
			c.ID = 42
			*created = append(*created, c)
			return nil
		},
	}
	loans := &loanmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*loan.Agreement, error) {
			if l == nil || id != l.ID {
				return nil, loan.ErrNotFound
			}
			return l, nil
		},
	}
	return NewUsecase(covs, uowmock.Passthrough(uow.Repos{Loans: loans, Covenants: covs}))
}

func TestCreate_Success(t *testing.T) {
	var created []*covenant.Covenant
	uc := newCreateUsecase(&loan.Agreement{ID: 3, Status: loan.StatusActive}, &created)

	dto, err := uc.Create(context.Background(), 3, CreateCovenantInput{
		Name:             "  Maximum Leverage Ratio ",
		Type:             covenant.TypeFinancial,
		ThresholdText:    "≤ 3.50x",
		ComplianceStatus: covenant.StatusCompliant, // no value: forced to NOT_TESTED
		SourceDocument:   "Revolver Agreement.pdf",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.CovenantID != 42 || dto.LoanID != 3 || dto.Name != "Maximum Leverage Ratio" || !dto.IsActive {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.ComplianceStatus != covenant.StatusNotTested {
		t.Fatalf("status = %s, want NOT_TESTED", dto.ComplianceStatus)
	}
	if len(created) != 1 {
		t.Fatalf("created = %d", len(created))
	}
}

func TestCreate_Rejections(t *testing.T) {
	var created []*covenant.Covenant
	ctx := context.Background()
	valid := CreateCovenantInput{Name: "Current Ratio", Type: covenant.TypeFinancial, ThresholdText: "≥ 1.20x"}

	uc := newCreateUsecase(&loan.Agreement{ID: 3, Status: loan.StatusPaidOff}, &created)
	if _, err := uc.Create(ctx, 3, valid); !errors.Is(err, loan.ErrNotActive) {
		t.Errorf("paid off loan: want ErrNotActive, got %v", err)
	}
	if _, err := uc.Create(ctx, 9, valid); !errors.Is(err, loan.ErrNotFound) {
		t.Errorf("missing loan: want ErrNotFound, got %v", err)
	}

	bad := valid
	bad.Type = "Covenant"
	if _, err := uc.Create(ctx, 3, bad); !errors.Is(err, covenant.ErrInvalidType) {
		t.Errorf("bad type: want ErrInvalidType, got %v", err)
	}
	bad = valid
	bad.Name = "  "
	if _, err := uc.Create(ctx, 3, bad); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name: want ErrInvalidInput, got %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("nothing should be created, got %d", len(created))
	}
}
