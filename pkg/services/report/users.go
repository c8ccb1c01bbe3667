package report

import (
	"context"
	"sort"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
)

const unknownUser = "Unknown"

func taskUser(t domain.TaskRecord) string {
	if t.Username == "" {
		return unknownUser
	}
	return t.Username
}

// UserSummaries builds the per-user billability report. The input batch must
// already be restricted to what the caller may see; no authorization happens
// here. The averaging denominator counts distinct dates among billable
// records only, and top client/project come from the billable subset, while
// last activity spans all of the user's records.
func (a *analytics) UserSummaries(ctx context.Context, opts RangeOptions) ([]domain.UserSummary, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	perUser := map[string][]domain.TaskRecord{}
	order := []string{}
	for _, t := range tasks {
		u := taskUser(t)
		if _, ok := perUser[u]; !ok {
			order = append(order, u)
		}
		perUser[u] = append(perUser[u], t)
	}

	out := make([]domain.UserSummary, 0, len(order))
	for _, u := range order {
		userTasks := perUser[u]

		var billable []domain.TaskRecord
		var totalHours, billableHours float64
		summary := domain.UserSummary{
			Username:  u,
			TaskCount: len(userTasks),
			TopClient: "N/A", TopProject: "N/A",
		}
		for _, t := range userTasks {
			totalHours += t.Hours
			if a.evaluator.IsTaskBillable(t) {
				billableHours += t.Hours
				billable = append(billable, t)
			}
			if t.Date.After(summary.LastActivity) {
				summary.LastActivity = t.Date
			}
		}

		billableDays := map[string]struct{}{}
		for _, t := range billable {
			billableDays[t.Date.Format("2006-01-02")] = struct{}{}
		}
		if len(billableDays) > 0 {
			summary.AvgDaily = grouping.Round1(billableHours / float64(len(billableDays)))
		}

		if byClient := grouping.SumBy(billable, taskClient, taskHours); len(byClient) > 0 {
			summary.TopClient = byClient[0].Key
		}
		if byProject := grouping.SumBy(billable, taskProject, taskHours); len(byProject) > 0 {
			summary.TopProject = byProject[0].Key
		}

		summary.TotalHours = grouping.Round1(totalHours)
		summary.BillableHours = grouping.Round1(billableHours)
		summary.NonBillableHours = grouping.Round1(totalHours - billableHours)
		out = append(out, summary)
	}

	return out, nil
}

// HoursByUser is the flat per-user split with percentage-of-total; no
// billability involved.
func (a *analytics) HoursByUser(ctx context.Context, opts RangeOptions) ([]domain.UserHours, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	entries := grouping.SumBy(tasks, taskUser, taskHours)
	total := grouping.Total(entries)

	out := make([]domain.UserHours, 0, len(entries))
	for _, e := range grouping.WithPercentages(entries, total) {
		out = append(out, domain.UserHours{
			Username:   e.Key,
			Hours:      grouping.Round1(e.Value),
			Percentage: e.Percentage,
		})
	}
	return out, nil
}

// UserActivityTimeline flattens the (user, day) grid into tuples ordered by
// date then username, which keeps chart rendering stable.
func (a *analytics) UserActivityTimeline(ctx context.Context, opts RangeOptions) ([]domain.UserActivity, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	type cell struct {
		user string
		day  string
	}
	sums := map[cell]float64{}
	days := map[cell]domain.UserActivity{}
	for _, t := range tasks {
		c := cell{taskUser(t), t.Date.Format("2006-01-02")}
		sums[c] += t.Hours
		days[c] = domain.UserActivity{Username: c.user, Date: t.Date}
	}

	out := make([]domain.UserActivity, 0, len(sums))
	for c, hours := range sums {
		entry := days[c]
		entry.Hours = grouping.Round1(hours)
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Username < out[j].Username
	})

	return out, nil
}
