// Package records bridges the persistence rows to the domain types the
// report engine consumes. It is the record-source collaborator: scope and
// authorization are the host's problem, not checked here.
package records

import (
	"context"
	"time"

	"github.com/de-tools/work-atlas/pkg/adapters"
	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/store/sqlite/record"
)

type Manager interface {
	GetTasks(ctx context.Context, start, end time.Time) ([]domain.TaskRecord, error)
	GetExpenses(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error)
	ListFlags(ctx context.Context) ([]domain.BillingFlag, error)
}

type manager struct {
	store record.Store
}

func NewManager(store record.Store) Manager {
	return &manager{store: store}
}

func (m *manager) GetTasks(ctx context.Context, start, end time.Time) ([]domain.TaskRecord, error) {
	rows, err := m.store.GetTasks(ctx, start, end)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskRecord, 0, len(rows))
	for _, row := range rows {
		task, err := adapters.MapStoreTaskRowToDomain(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (m *manager) GetExpenses(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error) {
	rows, err := m.store.GetExpenses(ctx, start, end)
	if err != nil {
		return nil, err
	}

	expenses := make([]domain.ExpenseRecord, 0, len(rows))
	for _, row := range rows {
		expense, err := adapters.MapStoreExpenseRowToDomain(row)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (m *manager) ListFlags(ctx context.Context) ([]domain.BillingFlag, error) {
	rows, err := m.store.ListFlags(ctx)
	if err != nil {
		return nil, err
	}

	flags := make([]domain.BillingFlag, 0, len(rows))
	for _, row := range rows {
		flags = append(flags, adapters.MapStoreFlagRowToDomain(row))
	}
	return flags, nil
}
