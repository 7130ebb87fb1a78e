package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/uow"
	"covenant-command-center/internal/testutil/alertmock"
	"covenant-command-center/internal/testutil/uowmock"
)

func TestSummary_FillsMissingTypes(t *testing.T) {
	repo := &alertmock.Repo{
		CountActiveByTypeFn: func(context.Context) (map[alert.Type]int64, error) {
			return map[alert.Type]int64{alert.TypeBreach: 2, alert.TypeWarning: 1}, nil
		},
	}
	s, err := NewUsecase(repo, nil, nil).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary err: %v", err)
	}
	if s.TotalActive != 3 || s.ByType[alert.TypeBreach] != 2 || s.ByType[alert.TypeCritical] != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if _, ok := s.ByType[alert.TypeInfo]; !ok {
		t.Fatalf("INFO missing from summary")
	}
}

func TestRecent_UsesLimit(t *testing.T) {
	var gotLimit int
	repo := &alertmock.Repo{
		RecentFn: func(_ context.Context, limit int) ([]alert.Row, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	rows, err := NewUsecase(repo, nil, nil).Recent(context.Background())
	if err != nil || rows == nil {
		t.Fatalf("Recent = %v, %v", rows, err)
	}
	if gotLimit != 5 {
		t.Fatalf("limit = %d, want 5", gotLimit)
	}
}

func TestList_ValidatesFilter(t *testing.T) {
	called := false
	repo := &alertmock.Repo{
		ListFn: func(context.Context, alert.Filter) ([]alert.Row, error) {
			called = true
			return []alert.Row{{AlertID: 1}}, nil
		},
	}
	uc := NewUsecase(repo, nil, nil)
	ctx := context.Background()

	if _, err := uc.List(ctx, alert.Filter{Types: []alert.Type{"PANIC"}}); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("type: want ErrInvalidFilter, got %v", err)
	}
	if _, err := uc.List(ctx, alert.Filter{Status: "Snoozed"}); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("status: want ErrInvalidFilter, got %v", err)
	}
	if called {
		t.Fatalf("repo must not be queried with an invalid filter")
	}

	rows, err := uc.List(ctx, alert.Filter{Types: []alert.Type{alert.TypeBreach}, Status: alert.StatusActive})
	if err != nil || len(rows) != 1 {
		t.Fatalf("List = %v, %v", rows, err)
	}
}

func closeUsecase(a *alert.Alert, saved *int) *Usecase {
	repo := &alertmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*alert.Alert, error) {
			if a == nil || id != a.ID {
				return nil, alert.ErrNotFound
			}
			return a, nil
		},
		SaveFn: func(context.Context, *alert.Alert) error { *saved++; return nil },
	}
	return NewUsecase(repo, uowmock.Passthrough(uow.Repos{Alerts: repo}), nil)
}

func TestResolve_Success(t *testing.T) {
	saved := 0
	a := &alert.Alert{ID: 1, LoanID: 1, Type: alert.TypeBreach, Status: alert.StatusActive, CreatedAt: time.Now()}
	dto, err := closeUsecase(a, &saved).Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if dto.Status != alert.StatusResolved || saved != 1 {
		t.Fatalf("dto=%+v saved=%d", dto, saved)
	}
}

func TestDismiss_OnlyFromActive(t *testing.T) {
	saved := 0
	a := &alert.Alert{ID: 2, Status: alert.StatusResolved}
	uc := closeUsecase(a, &saved)

	if _, err := uc.Dismiss(context.Background(), 2); !errors.Is(err, alert.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if _, err := uc.Dismiss(context.Background(), 3); !errors.Is(err, alert.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if saved != 0 {
		t.Fatalf("nothing should be saved, got %d", saved)
	}
}
