package covenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	covenants covenant.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(covenants covenant.Repository, u uow.UnitOfWork) *Usecase {
	return &Usecase{covenants: covenants, uow: u}
}

// List returns active covenants with their loan, breaches first.
func (u *Usecase) List(ctx context.Context, f covenant.Filter) ([]covenant.Row, error) {
	for _, s := range f.Statuses {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
		}
	}
	for _, t := range f.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", covenant.ErrInvalidType, t)
		}
	}
	rows, err := u.covenants.ListRows(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []covenant.Row{}
	}
	return rows, nil
}

var exportHeader = []string{
	"Loan", "Borrower", "Covenant", "Type", "Status", "Current Value", "Threshold", "Source Document",
}

// Export returns the filtered covenant table as header plus string rows.
func (u *Usecase) Export(ctx context.Context, f covenant.Filter) (*TableDTO, error) {
	rows, err := u.List(ctx, f)
	if err != nil {
		return nil, err
	}
	t := &TableDTO{Header: exportHeader, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		value := covenant.NotAvailable
		if !r.MissingValue() {
			value = *r.CurrentValue
		}
		t.Rows = append(t.Rows, []string{
			r.DealName, r.BorrowerName, r.CovenantName, string(r.CovenantType),
			string(r.ComplianceStatus), value, r.ThresholdText, r.SourceDocument,
		})
	}
	return t, nil
}

// Create registers a covenant extracted from a loan document.
func (u *Usecase) Create(ctx context.Context, loanID uint64, in CreateCovenantInput) (*CovenantDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: covenant_name is required", ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return nil, covenant.ErrInvalidType
	}
	status := in.ComplianceStatus
	if status == "" {
		status = covenant.StatusNotTested
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	var out *covenant.Covenant
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if !l.IsActive() {
			return loan.ErrNotActive
		}
		c := &covenant.Covenant{
			LoanID:           l.ID,
			Name:             in.Name,
			Type:             in.Type,
			ThresholdText:    strings.TrimSpace(in.ThresholdText),
			CurrentValue:     in.CurrentValue,
			ComplianceStatus: status,
			IsActive:         true,
			SourceDocument:   in.SourceDocument,
		}
		// the store hook does this too; mocks don't run hooks
		if covenant.MissingValue(c.CurrentValue) {
			c.ComplianceStatus = covenant.StatusNotTested
		}
		if err := r.Covenants.Create(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(out), nil
}

func toDTO(c *covenant.Covenant) *CovenantDTO {
	return &CovenantDTO{
		CovenantID:       c.ID,
		LoanID:           c.LoanID,
		Name:             c.Name,
		Type:             c.Type,
		ThresholdText:    c.ThresholdText,
		CurrentValue:     c.CurrentValue,
		ComplianceStatus: c.ComplianceStatus,
		IsActive:         c.IsActive,
		SourceDocument:   c.SourceDocument,
		UpdatedAt:        c.UpdatedAt,
	}
}
