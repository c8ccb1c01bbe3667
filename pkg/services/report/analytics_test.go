package report

import (
	"context"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/stretchr/testify/mock"
)

// Friday, 18 July 2025. Month window: 01..31 July; current week: 14..20 July.
var testNow = time.Date(2025, 7, 18, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type mockTaskSource struct {
	mock.Mock
}

func (m *mockTaskSource) GetTasks(ctx context.Context, start, end time.Time) ([]domain.TaskRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskRecord), args.Error(1)
}

type mockExpenseSource struct {
	mock.Mock
}

func (m *mockExpenseSource) GetExpenses(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

type fixture struct {
	tasks    *mockTaskSource
	expenses *mockExpenseSource
	index    *billing.Index
	svc      Analytics
}

func newFixture(flags ...domain.BillingFlag) *fixture {
	tasks := new(mockTaskSource)
	expenses := new(mockExpenseSource)
	index := billing.NewIndex()
	index.Load(flags)

	return &fixture{
		tasks:    tasks,
		expenses: expenses,
		index:    index,
		svc: NewAnalytics(tasks, expenses, billing.NewEvaluator(index),
			WithClock(func() time.Time { return testNow })),
	}
}
