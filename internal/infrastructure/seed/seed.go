// Package seed loads the demo portfolio into an empty store.
package seed

import (
	"context"
	"log/slog"
	"time"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
)

type demoCovenant struct {
	loan      int // index into demoLoans
	name      string
	threshold string
	value     string
	status    covenant.Status
	source    string
}

type demoAlert struct {
	loan    int
	typ     alert.Type
	message string
}

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

var demoLoans = []loan.Agreement{
	{DealName: "Aerospace Credit Facility 2022", BorrowerName: "Aerospace Industries Inc", PrincipalAmount: 50_000_000, InterestRate: 5.5, Status: loan.StatusActive, OriginationDate: date(2022, 1, 15)},
	{DealName: "Manufacturing Term Loan", BorrowerName: "Global Manufacturing Corp", PrincipalAmount: 30_000_000, InterestRate: 4.8, Status: loan.StatusActive, OriginationDate: date(2021, 6, 20)},
	{DealName: "Tech Startup Revolver", BorrowerName: "TechCo Innovations", PrincipalAmount: 15_000_000, InterestRate: 6.2, Status: loan.StatusActive, OriginationDate: date(2023, 3, 10)},
	{DealName: "Real Estate Bridge Loan", BorrowerName: "Property Holdings LLC", PrincipalAmount: 25_000_000, InterestRate: 5.0, Status: loan.StatusActive, OriginationDate: date(2022, 9, 1)},
}

var demoCovenants = []demoCovenant{
	{0, "Maximum Leverage Ratio", "≤ 4.50x", "5.20x", covenant.StatusBreach, "Credit Agreement 2022.pdf"},
	{0, "Minimum Interest Coverage Ratio", "≥ 3.00x", "2.85x", covenant.StatusBreach, "Credit Agreement 2022.pdf"},
	{1, "Maximum Leverage Ratio", "≤ 3.00x", "2.50x", covenant.StatusCompliant, "Term Loan Agreement.pdf"},
	{2, "Minimum EBITDA", "≥ $5,000,000", "$6,200,000", covenant.StatusCompliant, "Revolver Agreement.pdf"},
	{3, "Current Ratio", "≥ 1.20x", "1.15x", covenant.StatusAtRisk, "Bridge Loan Agreement.pdf"},
}

var demoAlerts = []demoAlert{
	{0, alert.TypeBreach, "Leverage Ratio breach detected: 5.20x (Limit: 4.50x)"},
	{0, alert.TypeBreach, "Interest Coverage breach detected: 2.85x (Required: 3.00x)"},
	{3, alert.TypeWarning, "Current Ratio approaching threshold"},
}

type Result struct {
	Skipped   bool
	Loans     int
	Covenants int
	Alerts    int
}

// Demo inserts the demo portfolio in one transaction. A store that already
// holds loans is left alone, so running it twice is harmless.
func Demo(ctx context.Context, u uow.UnitOfWork, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	var res Result
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		existing, err := r.Loans.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			res.Skipped = true
			return nil
		}

		ids := make([]uint64, len(demoLoans))
		for i := range demoLoans {
			l := demoLoans[i]
			if err := r.Loans.Create(ctx, &l); err != nil {
				return err
			}
			ids[i] = l.ID
			res.Loans++
		}
		now := time.Now().UTC()
		for _, dc := range demoCovenants {
			v := dc.value
			c := &covenant.Covenant{
				LoanID:           ids[dc.loan],
				Name:             dc.name,
				Type:             covenant.TypeFinancial,
				ThresholdText:    dc.threshold,
				CurrentValue:     &v,
				ComplianceStatus: dc.status,
				IsActive:         true,
				UpdatedAt:        now,
				SourceDocument:   dc.source,
			}
			if err := r.Covenants.Create(ctx, c); err != nil {
				return err
			}
			res.Covenants++
		}
		for _, da := range demoAlerts {
			a := &alert.Alert{
				LoanID:  ids[da.loan],
				Type:    da.typ,
				Message: da.message,
				Status:  alert.StatusActive,
			}
			if err := r.Alerts.Create(ctx, a); err != nil {
				return err
			}
			res.Alerts++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if res.Skipped {
		log.InfoContext(ctx, "store already has loans, demo seed skipped")
	} else {
		log.InfoContext(ctx, "demo portfolio seeded", "loans", res.Loans, "covenants", res.Covenants, "alerts", res.Alerts)
	}
	return res, nil
}
