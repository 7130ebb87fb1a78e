package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"covenant-command-center/internal/domain/compliance"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	loans      loan.Repository
	financials financial.Repository
	uow        uow.UnitOfWork
	log        *slog.Logger
}

func NewUsecase(loans loan.Repository, financials financial.Repository, u uow.UnitOfWork, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{loans: loans, financials: financials, uow: u, log: log}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	in.DealName = strings.TrimSpace(in.DealName)
	in.BorrowerName = strings.TrimSpace(in.BorrowerName)
	if in.DealName == "" || in.BorrowerName == "" || in.PrincipalAmount <= 0 || in.InterestRate < 0 {
		return nil, ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = loan.StatusActive
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", loan.ErrInvalidStatus, in.Status)
	}

	l := &loan.Agreement{
		DealName:        in.DealName,
		BorrowerName:    in.BorrowerName,
		PrincipalAmount: in.PrincipalAmount,
		InterestRate:    in.InterestRate,
		Status:          in.Status,
		OriginationDate: in.OriginationDate,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "loan onboarded", "loan_id", l.ID, "deal", l.DealName)
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// UpdateStatus moves a loan to another lifecycle status. Loans leave the
// portfolio this way; they are never deleted.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID uint64, to loan.Status) (*LoanDTO, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", loan.ErrInvalidStatus, to)
	}
	var out *loan.Agreement
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Agreement) error {
		from := l.Status
		if from == to {
			out = l
			return nil
		}
		l.Status = to
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		u.log.InfoContext(ctx, "loan status changed", "loan_id", l.ID, "from", from, "to", to)
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(out), nil
}

// ListSnapshots returns the loan's uploaded financials, newest period first.
func (u *Usecase) ListSnapshots(ctx context.Context, loanID uint64) ([]SnapshotDTO, error) {
	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	ss, err := u.financials.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]SnapshotDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, SnapshotDTO{
			FinancialID:        s.ID,
			ReportingPeriod:    s.ReportingPeriod,
			TotalDebt:          s.TotalDebt,
			EBITDA:             s.EBITDA,
			InterestExpense:    s.InterestExpense,
			CurrentAssets:      s.CurrentAssets,
			CurrentLiabilities: s.CurrentLiabilities,
			NetWorth:           s.NetWorth,
			UploadDate:         s.UploadDate,
		})
	}
	return out, nil
}

func toDTO(l *loan.Agreement) *LoanDTO {
	return &LoanDTO{
		LoanID:           l.ID,
		DealName:         l.DealName,
		BorrowerName:     l.BorrowerName,
		PrincipalAmount:  l.PrincipalAmount,
		PrincipalDisplay: compliance.FormatMoney(l.PrincipalAmount),
		InterestRate:     l.InterestRate,
		Status:           l.Status,
		OriginationDate:  l.OriginationDate,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
