package records

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) AddTasks(ctx context.Context, rows []store.TaskRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *mockStore) AddExpenses(ctx context.Context, rows []store.ExpenseRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *mockStore) AddFlags(ctx context.Context, rows []store.FlagRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *mockStore) GetTasks(ctx context.Context, start, end time.Time) ([]store.TaskRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.TaskRow), args.Error(1)
}

func (m *mockStore) GetExpenses(ctx context.Context, start, end time.Time) ([]store.ExpenseRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.ExpenseRow), args.Error(1)
}

func (m *mockStore) ListFlags(ctx context.Context) ([]store.FlagRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.FlagRow), args.Error(1)
}

func TestManager_GetTasks(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	t.Run("maps rows to domain records", func(t *testing.T) {
		st := new(mockStore)
		st.On("GetTasks", ctx, start, end).Return([]store.TaskRow{
			{ID: "t1", Date: "2025-07-10", Client: "Acme", Project: "Website",
				Phase: "Dev", Hours: 4.5, Details: "Fix login", Username: "alice"},
		}, nil)

		manager := NewManager(st)
		tasks, err := manager.GetTasks(ctx, start, end)

		require.NoError(t, err)
		assert.Equal(t, []domain.TaskRecord{{
			Date:     time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Client:   "Acme",
			Project:  "Website",
			Phase:    "Dev",
			Hours:    4.5,
			Details:  "Fix login",
			Username: "alice",
		}}, tasks)
		st.AssertExpectations(t)
	})

	t.Run("malformed date fails the batch", func(t *testing.T) {
		st := new(mockStore)
		st.On("GetTasks", ctx, start, end).Return([]store.TaskRow{
			{ID: "t1", Date: "10/07/2025", Client: "Acme"},
		}, nil)

		manager := NewManager(st)
		_, err := manager.GetTasks(ctx, start, end)

		assert.ErrorContains(t, err, "parse task date")
	})
}

func TestManager_GetExpenses(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	st := new(mockStore)
	st.On("GetExpenses", ctx, start, end).Return([]store.ExpenseRow{
		{ID: "e1", Date: "2025-07-03", Client: "Acme", Project: "Website",
			ExpenseType: "Travel", Status: "Approved"},
	}, nil)

	manager := NewManager(st)
	expenses, err := manager.GetExpenses(ctx, start, end)

	require.NoError(t, err)
	assert.Equal(t, []domain.ExpenseRecord{{
		Date:        time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Client:      "Acme",
		Project:     "Website",
		ExpenseType: "Travel",
		Status:      "Approved",
	}}, expenses)
}

func TestManager_ListFlags(t *testing.T) {
	ctx := context.Background()

	st := new(mockStore)
	st.On("ListFlags", ctx).Return([]store.FlagRow{
		{Category: "CLIENT", Subcategory: "TASK", ItemValue: "Internal", NonBillable: true},
	}, nil)

	manager := NewManager(st)
	flags, err := manager.ListFlags(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.BillingFlag{{
		Category:    domain.CategoryClient,
		Subcategory: domain.SubcategoryTask,
		ItemValue:   "Internal",
		NonBillable: true,
	}}, flags)
}
