package report

import (
	"context"
	"sort"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/dates"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
)

// WeeklySummary buckets every record into its own Monday-start week and
// reports totals, top clients and week-over-week change, newest week first.
// The default window is the last four weeks.
//
// Change compares against the nearest older week that has data; calendar
// weeks without records are absent from the bucket set and are skipped over.
func (a *analytics) WeeklySummary(ctx context.Context, opts RangeOptions) ([]domain.WeekSummary, error) {
	if opts.Start == nil && opts.End == nil {
		start, end := dates.LastNDays(a.now(), defaultWeeklyWindowDays)
		opts = RangeOptions{Start: &start, End: &end}
	}

	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	buckets := map[time.Time][]domain.TaskRecord{}
	for _, t := range tasks {
		weekStart, _ := dates.WeekOf(t.Date)
		buckets[weekStart] = append(buckets[weekStart], t)
	}

	starts := make([]time.Time, 0, len(buckets))
	for weekStart := range buckets {
		starts = append(starts, weekStart)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].After(starts[j]) })

	out := make([]domain.WeekSummary, 0, len(starts))
	for i, weekStart := range starts {
		weekTasks := buckets[weekStart]

		var total float64
		for _, t := range weekTasks {
			total += t.Hours
		}

		change := 0.0
		if i+1 < len(starts) {
			var prev float64
			for _, t := range buckets[starts[i+1]] {
				prev += t.Hours
			}
			if prev > 0 {
				change = grouping.Round1((total - prev) / prev * 100)
			}
		}

		out = append(out, domain.WeekSummary{
			WeekStart:  weekStart,
			WeekEnd:    weekStart.AddDate(0, 0, 6),
			TotalHours: grouping.Round1(total),
			TopClients: topN(clientHours(weekTasks), topClientsPerBucket),
			Change:     change,
		})
	}

	return out, nil
}

// MonthlyComparison buckets by calendar month, oldest first so month charts
// read left to right chronologically, unlike the weekly view. Default window
// is the last six months.
func (a *analytics) MonthlyComparison(ctx context.Context, opts RangeOptions) ([]domain.MonthSummary, error) {
	if opts.Start == nil && opts.End == nil {
		_, end := dates.MonthRange(a.now())
		start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -(defaultMonthlyWindow - 1), 0)
		opts = RangeOptions{Start: &start, End: &end}
	}

	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	buckets := map[monthKey][]domain.TaskRecord{}
	for _, t := range tasks {
		k := monthKey{t.Date.Year(), t.Date.Month()}
		buckets[k] = append(buckets[k], t)
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]domain.MonthSummary, 0, len(keys))
	for _, k := range keys {
		monthTasks := buckets[k]

		var total float64
		for _, t := range monthTasks {
			total += t.Hours
		}

		out = append(out, domain.MonthSummary{
			Year:       k.year,
			Month:      k.month,
			TotalHours: grouping.Round1(total),
			TopClients: topN(clientHours(monthTasks), topClientsPerBucket),
		})
	}

	return out, nil
}

func topN(entries []domain.ClientHours, n int) []domain.ClientHours {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
