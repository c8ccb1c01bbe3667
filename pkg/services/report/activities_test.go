package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopActivities(t *testing.T) {
	ctx := context.Background()

	t.Run("dedups on trimmed details", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			[]domain.TaskRecord{
				{Date: day(2025, 7, 2), Client: "Acme", Project: "Website", Details: "  Code review ", Hours: 5},
				{Date: day(2025, 7, 10), Client: "Globex", Project: "Audit", Details: "Code review", Hours: 3},
			}, nil)

		activities, err := f.svc.TopActivities(ctx, ActivityOptions{})

		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, domain.Activity{
			Details: "Code review",
			// client/project come from the first record seen for the key
			Client:  "Acme",
			Project: "Website",
			Hours:   8,
			// the date is the most recent occurrence
			LastDate: day(2025, 7, 10),
		}, activities[0])
	})

	t.Run("case differences are distinct keys", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			[]domain.TaskRecord{
				{Date: day(2025, 7, 2), Details: "code review", Hours: 1},
				{Date: day(2025, 7, 2), Details: "Code review", Hours: 1},
			}, nil)

		activities, err := f.svc.TopActivities(ctx, ActivityOptions{})

		require.NoError(t, err)
		assert.Len(t, activities, 2)
	})

	t.Run("min hours threshold filters accumulated totals", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			[]domain.TaskRecord{
				{Date: day(2025, 7, 2), Details: "standups", Hours: 1},
				{Date: day(2025, 7, 3), Details: "standups", Hours: 1.5},
				{Date: day(2025, 7, 2), Details: "migration", Hours: 9},
			}, nil)

		activities, err := f.svc.TopActivities(ctx, ActivityOptions{MinHours: 3})

		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "migration", activities[0].Details)
	})

	t.Run("returns at most ten entries sorted by hours", func(t *testing.T) {
		f := newFixture()
		records := make([]domain.TaskRecord, 0, 12)
		for i := 0; i < 12; i++ {
			records = append(records, domain.TaskRecord{
				Date:    day(2025, 7, 2),
				Details: fmt.Sprintf("activity-%d", i),
				Hours:   float64(i + 1),
			})
		}
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(records, nil)

		activities, err := f.svc.TopActivities(ctx, ActivityOptions{})

		require.NoError(t, err)
		require.Len(t, activities, 10)
		assert.Equal(t, "activity-11", activities[0].Details)
		assert.Equal(t, 12.0, activities[0].Hours)
		assert.Equal(t, "activity-2", activities[9].Details)
	})

	t.Run("empty batch yields empty list", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			[]domain.TaskRecord{}, nil)

		activities, err := f.svc.TopActivities(ctx, ActivityOptions{})

		require.NoError(t, err)
		assert.Empty(t, activities)
	})
}
