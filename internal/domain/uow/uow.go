package uow

import (
	"context"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"
)

type Repos struct {
	Loans      loan.Repository
	Covenants  covenant.Repository
	Financials financial.Repository
	Alerts     alert.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Agreement) error) error
}
