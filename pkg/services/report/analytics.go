// Package report builds the dashboard and breakdown reports from a window of
// task and expense records. Every builder is a pure transformation: it
// fetches its batch, folds it through the grouping primitives and returns a
// value DTO. Nothing here persists state or verifies authorization; the
// record sources are trusted to be scoped already.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/de-tools/work-atlas/pkg/services/dates"
)

const (
	defaultWeeklyWindowDays = 28 // last 4 weeks
	defaultMonthlyWindow    = 6  // months
	topClientsPerBucket     = 5
	topActivitiesLimit      = 10
)

type TaskSource interface {
	GetTasks(ctx context.Context, start, end time.Time) ([]domain.TaskRecord, error)
}

type ExpenseSource interface {
	GetExpenses(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error)
}

// RangeOptions carries the caller's optional window; nil bounds fall back to
// the current month.
type RangeOptions struct {
	Start *time.Time
	End   *time.Time
}

type ProjectOptions struct {
	RangeOptions
	Client string
}

type PhaseOptions struct {
	RangeOptions
	Project string
}

type ActivityOptions struct {
	RangeOptions
	MinHours float64
}

type Analytics interface {
	Dashboard(ctx context.Context, opts RangeOptions) (domain.DashboardSummary, error)
	TimeByClient(ctx context.Context, opts RangeOptions) ([]domain.ClientHours, error)
	TimeByProject(ctx context.Context, opts ProjectOptions) ([]domain.ProjectHours, error)
	TimeByPhase(ctx context.Context, opts PhaseOptions) ([]domain.PhaseHours, error)
	DailyHours(ctx context.Context, opts RangeOptions) ([]domain.DayHours, error)
	WeeklySummary(ctx context.Context, opts RangeOptions) ([]domain.WeekSummary, error)
	MonthlyComparison(ctx context.Context, opts RangeOptions) ([]domain.MonthSummary, error)
	TopActivities(ctx context.Context, opts ActivityOptions) ([]domain.Activity, error)
	UserSummaries(ctx context.Context, opts RangeOptions) ([]domain.UserSummary, error)
	HoursByUser(ctx context.Context, opts RangeOptions) ([]domain.UserHours, error)
	UserActivityTimeline(ctx context.Context, opts RangeOptions) ([]domain.UserActivity, error)
	ExpenseSummary(ctx context.Context, opts RangeOptions) (domain.ExpenseSummary, error)
}

type analytics struct {
	tasks     TaskSource
	expenses  ExpenseSource
	evaluator *billing.Evaluator
	now       func() time.Time
}

type Option func(*analytics)

// WithClock overrides the wall clock; tests pin "now" with it.
func WithClock(now func() time.Time) Option {
	return func(a *analytics) { a.now = now }
}

func NewAnalytics(tasks TaskSource, expenses ExpenseSource, evaluator *billing.Evaluator, opts ...Option) Analytics {
	a := &analytics{
		tasks:     tasks,
		expenses:  expenses,
		evaluator: evaluator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// fetchTasks resolves the window and pulls the matching batch.
func (a *analytics) fetchTasks(ctx context.Context, opts RangeOptions) ([]domain.TaskRecord, time.Time, time.Time, error) {
	start, end := dates.Resolve(opts.Start, opts.End, a.now())
	records, err := a.tasks.GetTasks(ctx, start, end)
	if err != nil {
		return nil, start, end, fmt.Errorf("fetch tasks: %w", err)
	}
	return records, start, end, nil
}

// fetchTasksWindow pulls tasks for an explicit window, bypassing the resolver.
func (a *analytics) fetchTasksWindow(ctx context.Context, start, end time.Time) ([]domain.TaskRecord, error) {
	records, err := a.tasks.GetTasks(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	return records, nil
}

func taskClient(t domain.TaskRecord) string  { return t.Client }
func taskProject(t domain.TaskRecord) string { return t.Project }
func taskPhase(t domain.TaskRecord) string   { return t.Phase }
func taskHours(t domain.TaskRecord) float64  { return t.Hours }
