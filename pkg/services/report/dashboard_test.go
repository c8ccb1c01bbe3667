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

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("month and week figures", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, day(2025, 7, 1), day(2025, 7, 31)).Return(
			[]domain.TaskRecord{
				{Date: day(2025, 7, 2), Client: "Acme", Project: "Website", Hours: 6},
				{Date: day(2025, 7, 2), Client: "Acme", Project: "Website", Hours: 2},
				{Date: day(2025, 7, 3), Client: "Globex", Project: "Audit", Hours: 4},
			}, nil)
		f.tasks.On("GetTasks", mock.Anything, day(2025, 7, 14), day(2025, 7, 20)).Return(
			[]domain.TaskRecord{
				{Date: day(2025, 7, 15), Client: "Acme", Hours: 3.5},
			}, nil)

		summary, err := f.svc.Dashboard(ctx, RangeOptions{})

		require.NoError(t, err)
		assert.Equal(t, 12.0, summary.MonthHours)
		assert.Equal(t, 3.5, summary.WeekHours)
		assert.Equal(t, "Acme", summary.TopClient)
		assert.Equal(t, "Website", summary.TopProject)
		// 12 hours over 2 active days, not over 31 calendar days
		assert.Equal(t, 6.0, summary.AvgDaily)
		assert.Equal(t, 2, summary.ClientCount)
		f.tasks.AssertExpectations(t)
	})

	t.Run("empty batch yields zeroed summary", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			[]domain.TaskRecord{}, nil)

		summary, err := f.svc.Dashboard(ctx, RangeOptions{})

		require.NoError(t, err)
		assert.Equal(t, domain.DashboardSummary{
			MonthHours: 0, WeekHours: 0,
			TopClient: "N/A", TopProject: "N/A",
			AvgDaily: 0, ClientCount: 0,
		}, summary)
	})

	t.Run("week window ignores the caller's range", func(t *testing.T) {
		f := newFixture()
		start, end := day(2025, 3, 1), day(2025, 3, 31)
		f.tasks.On("GetTasks", mock.Anything, start, end).Return(
			[]domain.TaskRecord{{Date: day(2025, 3, 5), Client: "Acme", Hours: 8}}, nil)
		// the week fetch still covers the current week, not March
		f.tasks.On("GetTasks", mock.Anything, day(2025, 7, 14), day(2025, 7, 20)).Return(
			[]domain.TaskRecord{{Date: day(2025, 7, 16), Client: "Acme", Hours: 2}}, nil)

		summary, err := f.svc.Dashboard(ctx, RangeOptions{Start: &start, End: &end})

		require.NoError(t, err)
		assert.Equal(t, 8.0, summary.MonthHours)
		assert.Equal(t, 2.0, summary.WeekHours)
		f.tasks.AssertExpectations(t)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		f := newFixture()
		f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
			nil, fmt.Errorf("upstream down"))

		_, err := f.svc.Dashboard(ctx, RangeOptions{})

		assert.ErrorContains(t, err, "upstream down")
	})
}

func TestDashboardIdempotent(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetTasks", mock.Anything, mock.Anything, mock.Anything).Return(
		[]domain.TaskRecord{
			{Date: day(2025, 7, 2), Client: "Acme", Hours: 1.25},
			{Date: day(2025, 7, 3), Client: "Globex", Hours: 2.75},
		}, nil)

	first, err := f.svc.Dashboard(context.Background(), RangeOptions{})
	require.NoError(t, err)
	second, err := f.svc.Dashboard(context.Background(), RangeOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
