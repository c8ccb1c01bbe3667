package report

import (
	"context"
	"sort"
	"strings"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
)

// TopActivities dedups tasks on their trimmed details text (exact match, no
// case folding) and ranks the ten biggest by accumulated hours. Each entry
// keeps the client/project of the first record seen and the most recent date.
func (a *analytics) TopActivities(ctx context.Context, opts ActivityOptions) ([]domain.Activity, error) {
	tasks, _, _, err := a.fetchTasks(ctx, opts.RangeOptions)
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		activity domain.Activity
		order    int
	}
	seen := map[string]*accumulator{}
	for _, t := range tasks {
		key := strings.TrimSpace(t.Details)
		acc, ok := seen[key]
		if !ok {
			acc = &accumulator{
				activity: domain.Activity{
					Details:  key,
					Client:   t.Client,
					Project:  t.Project,
					LastDate: t.Date,
				},
				order: len(seen),
			}
			seen[key] = acc
		}
		acc.activity.Hours += t.Hours
		if t.Date.After(acc.activity.LastDate) {
			acc.activity.LastDate = t.Date
		}
	}

	accs := make([]*accumulator, 0, len(seen))
	for _, acc := range seen {
		if opts.MinHours > 0 && acc.activity.Hours < opts.MinHours {
			continue
		}
		accs = append(accs, acc)
	}
	sort.Slice(accs, func(i, j int) bool {
		if accs[i].activity.Hours != accs[j].activity.Hours {
			return accs[i].activity.Hours > accs[j].activity.Hours
		}
		return accs[i].order < accs[j].order
	})

	if len(accs) > topActivitiesLimit {
		accs = accs[:topActivitiesLimit]
	}

	out := make([]domain.Activity, 0, len(accs))
	for _, acc := range accs {
		acc.activity.Hours = grouping.Round1(acc.activity.Hours)
		out = append(out, acc.activity)
	}
	return out, nil
}
