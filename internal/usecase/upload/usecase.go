package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/compliance"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	uow    uow.UnitOfWork
	policy compliance.Policy
	now    func() time.Time
	log    *slog.Logger
}

func NewUsecase(u uow.UnitOfWork, policy compliance.Policy, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{uow: u, policy: policy, now: time.Now, log: log}
}

// Submit stores one period's financials for an active loan and retests
// every active covenant of that loan against them. The snapshot, covenant
// updates and alerts are written in one transaction; any failure leaves
// the store untouched.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ResultDTO, error) {
	in.ReportingPeriod = strings.TrimSpace(in.ReportingPeriod)
	if in.LoanID == 0 {
		return nil, fmt.Errorf("%w: loan_id is required", ErrInvalidInput)
	}
	if !financial.ValidPeriod(in.ReportingPeriod) {
		return nil, financial.ErrInvalidPeriod
	}

	figures := compliance.NewFigures(in.TotalDebt, in.EBITDA, in.InterestExpense,
		in.CurrentAssets, in.CurrentLiabilities, in.NetWorth)
	out := &ResultDTO{
		LoanID:          in.LoanID,
		ReportingPeriod: in.ReportingPeriod,
		Ratios:          ratiosDTO(figures.Ratios()),
		Results:         []CovenantResult{},
	}

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Agreement) error {
		if !l.IsActive() {
			return loan.ErrNotActive
		}
		exists, err := r.Financials.ExistsForPeriod(ctx, l.ID, in.ReportingPeriod)
		if err != nil {
			return err
		}
		if exists {
			return financial.ErrDuplicatePeriod
		}

		snap := &financial.Snapshot{
			LoanID:             l.ID,
			ReportingPeriod:    in.ReportingPeriod,
			TotalDebt:          in.TotalDebt,
			EBITDA:             in.EBITDA,
			InterestExpense:    in.InterestExpense,
			CurrentAssets:      in.CurrentAssets,
			CurrentLiabilities: in.CurrentLiabilities,
			NetWorth:           in.NetWorth,
		}
		if err := r.Financials.Create(ctx, snap); err != nil {
			return err
		}
		out.FinancialID = snap.ID

		covs, err := r.Covenants.ListActiveByLoan(ctx, l.ID)
		if err != nil {
			return err
		}
		now := u.now().UTC()
		for i := range covs {
			c := &covs[i]
			outcome, th, ok := u.policy.Test(*c, figures)
			if !ok {
				out.Skipped = append(out.Skipped, c.Name)
				continue
			}

			previous := c.ComplianceStatus
			c.Observe(outcome.Display, outcome.Status, now)
			if err := r.Covenants.Save(ctx, c); err != nil {
				return err
			}
			out.Results = append(out.Results, CovenantResult{
				CovenantID:     c.ID,
				Covenant:       c.Name,
				Threshold:      c.ThresholdText,
				Actual:         outcome.Display,
				Status:         c.ComplianceStatus,
				PreviousStatus: previous,
			})

			a := transitionAlert(l.ID, c, outcome, th, previous)
			if a == nil {
				continue
			}
			if err := r.Alerts.Create(ctx, a); err != nil {
				return err
			}
			out.AlertsCreated++
			if a.Type == alert.TypeBreach {
				out.NewBreaches++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "financials uploaded",
		"loan_id", in.LoanID,
		"period", in.ReportingPeriod,
		"tested", len(out.Results),
		"new_breaches", out.NewBreaches,
	)
	return out, nil
}

// transitionAlert returns the alert raised when a covenant moves into
// BREACH or AT_RISK, or nil when its state did not get worse that way.
func transitionAlert(loanID uint64, c *covenant.Covenant, o compliance.Outcome, th compliance.Threshold, previous covenant.Status) *alert.Alert {
	if c.ComplianceStatus == previous {
		return nil
	}
	bound := "Required"
	if th.Direction == compliance.Maximum {
		bound = "Limit"
	}
	label := covenantLabel(c.Name)
	limit := compliance.FormatValue(o.Metric, th.Limit)

	switch c.ComplianceStatus {
	case covenant.StatusBreach:
		return &alert.Alert{
			LoanID:  loanID,
			Type:    alert.TypeBreach,
			Message: fmt.Sprintf("%s breach detected: %s (%s: %s)", label, o.Display, bound, limit),
			Status:  alert.StatusActive,
		}
	case covenant.StatusAtRisk:
		return &alert.Alert{
			LoanID:  loanID,
			Type:    alert.TypeWarning,
			Message: fmt.Sprintf("%s approaching threshold: %s (%s: %s)", label, o.Display, bound, limit),
			Status:  alert.StatusActive,
		}
	}
	return nil
}

// "Maximum Leverage Ratio" -> "Leverage Ratio"
func covenantLabel(name string) string {
	for _, p := range []string{"Maximum ", "Minimum "} {
		if len(name) > len(p) && strings.EqualFold(name[:len(p)], p) {
			return name[len(p):]
		}
	}
	return name
}

func ratiosDTO(r compliance.Ratios) RatiosDTO {
	conv := func(v compliance.Value, m compliance.Metric) RatioDTO {
		d := RatioDTO{Value: v.Amount.InexactFloat64(), Defined: v.Defined, Display: covenant.NotAvailable}
		if v.Defined {
			d.Display = compliance.FormatValue(m, v.Amount)
		}
		return d
	}
	return RatiosDTO{
		Leverage:         conv(r.Leverage, compliance.MetricLeverage),
		InterestCoverage: conv(r.InterestCoverage, compliance.MetricInterestCoverage),
		CurrentRatio:     conv(r.CurrentRatio, compliance.MetricCurrentRatio),
	}
}
