package report

import (
	"context"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/dates"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
	"golang.org/x/sync/errgroup"
)

// Dashboard builds the landing-page summary. The month figures honor the
// caller's range; the week figure always covers the current Monday-start week
// so the dashboard keeps a live reference point even when an older range is
// selected. The two fetches run concurrently.
func (a *analytics) Dashboard(ctx context.Context, opts RangeOptions) (domain.DashboardSummary, error) {
	weekStart, weekEnd := dates.CurrentWeek(a.now())

	var monthTasks, weekTasks []domain.TaskRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, _, _, err := a.fetchTasks(gctx, opts)
		monthTasks = records
		return err
	})
	g.Go(func() error {
		records, err := a.fetchTasksWindow(gctx, weekStart, weekEnd)
		weekTasks = records
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardSummary{}, err
	}

	byClient := grouping.SumBy(monthTasks, taskClient, taskHours)
	byProject := grouping.SumBy(monthTasks, taskProject, taskHours)
	monthHours := grouping.Total(byClient)

	var weekHours float64
	for _, t := range weekTasks {
		weekHours += t.Hours
	}

	// the average divides by days that actually have records, not by the
	// length of the month
	activeDays := map[string]struct{}{}
	for _, t := range monthTasks {
		activeDays[t.Date.Format("2006-01-02")] = struct{}{}
	}
	var avgDaily float64
	if len(activeDays) > 0 {
		avgDaily = grouping.Round1(monthHours / float64(len(activeDays)))
	}

	summary := domain.DashboardSummary{
		MonthHours:  grouping.Round1(monthHours),
		WeekHours:   grouping.Round1(weekHours),
		TopClient:   "N/A",
		TopProject:  "N/A",
		AvgDaily:    avgDaily,
		ClientCount: len(byClient),
	}
	if len(byClient) > 0 {
		summary.TopClient = byClient[0].Key
	}
	if len(byProject) > 0 {
		summary.TopProject = byProject[0].Key
	}

	return summary, nil
}
