package report

import (
	"context"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
)

// TimeByClient groups the window's tasks by client with percentage-of-total.
func (a *analytics) TimeByClient(ctx context.Context, opts RangeOptions) ([]domain.ClientHours, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}
	return clientHours(tasks), nil
}

func clientHours(tasks []domain.TaskRecord) []domain.ClientHours {
	entries := grouping.SumBy(tasks, taskClient, taskHours)
	total := grouping.Total(entries)

	out := make([]domain.ClientHours, 0, len(entries))
	for _, e := range grouping.WithPercentages(entries, total) {
		out = append(out, domain.ClientHours{
			Client:     e.Key,
			Hours:      grouping.Round1(e.Value),
			Percentage: e.Percentage,
		})
	}
	return out
}

// TimeByProject is the two-level project/phase breakdown. Absolute hours
// only; both levels sort descending by hours.
func (a *analytics) TimeByProject(ctx context.Context, opts ProjectOptions) ([]domain.ProjectHours, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts.RangeOptions)
	if err != nil {
		return nil, err
	}

	if opts.Client != "" {
		tasks = filterTasks(tasks, func(t domain.TaskRecord) bool { return t.Client == opts.Client })
	}

	perProject := map[string][]domain.TaskRecord{}
	for _, t := range tasks {
		perProject[t.Project] = append(perProject[t.Project], t)
	}

	projects := grouping.SumBy(tasks, taskProject, taskHours)
	out := make([]domain.ProjectHours, 0, len(projects))
	for _, p := range projects {
		phases := grouping.SumBy(perProject[p.Key], taskPhase, taskHours)
		breakdown := make([]domain.PhaseBreakdown, 0, len(phases))
		for _, ph := range phases {
			breakdown = append(breakdown, domain.PhaseBreakdown{
				Phase: ph.Key,
				Hours: grouping.Round1(ph.Value),
			})
		}
		out = append(out, domain.ProjectHours{
			Project: p.Key,
			Hours:   grouping.Round1(p.Value),
			Phases:  breakdown,
		})
	}

	return out, nil
}

// TimeByPhase groups by phase with percentages, optionally scoped to one
// project.
func (a *analytics) TimeByPhase(ctx context.Context, opts PhaseOptions) ([]domain.PhaseHours, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts.RangeOptions)
	if err != nil {
		return nil, err
	}

	if opts.Project != "" {
		tasks = filterTasks(tasks, func(t domain.TaskRecord) bool { return t.Project == opts.Project })
	}

	entries := grouping.SumBy(tasks, taskPhase, taskHours)
	total := grouping.Total(entries)

	out := make([]domain.PhaseHours, 0, len(entries))
	for _, e := range grouping.WithPercentages(entries, total) {
		out = append(out, domain.PhaseHours{
			Phase:      e.Key,
			Hours:      grouping.Round1(e.Value),
			Percentage: e.Percentage,
		})
	}
	return out, nil
}

// DailyHours emits a dense day series for the window: every calendar day
// appears, zero-hour days included.
func (a *analytics) DailyHours(ctx context.Context, opts RangeOptions) ([]domain.DayHours, error) {
	tasks, start, end, err := a.fetchTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	perDay := map[string]float64{}
	for _, t := range tasks {
		perDay[t.Date.Format("2006-01-02")] += t.Hours
	}

	var out []domain.DayHours
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		out = append(out, domain.DayHours{
			Date:  day,
			Hours: grouping.Round1(perDay[day.Format("2006-01-02")]),
		})
	}
	return out, nil
}

func filterTasks(tasks []domain.TaskRecord, keep func(domain.TaskRecord) bool) []domain.TaskRecord {
	out := make([]domain.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
