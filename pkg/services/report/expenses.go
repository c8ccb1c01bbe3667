package report

import (
	"context"
	"fmt"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/services/dates"
	"github.com/de-tools/work-atlas/pkg/services/grouping"
)

// ExpenseSummary counts the window's expenses by status and type, split into
// billable and non-billable via the flag evaluator.
func (a *analytics) ExpenseSummary(ctx context.Context, opts RangeOptions) (domain.ExpenseSummary, error) {
	start, end := dates.Resolve(opts.Start, opts.End, a.now())
	expenses, err := a.expenses.GetExpenses(ctx, start, end)
	if err != nil {
		return domain.ExpenseSummary{}, fmt.Errorf("fetch expenses: %w", err)
	}

	summary := domain.ExpenseSummary{TotalCount: len(expenses)}
	for _, e := range expenses {
		if a.evaluator.IsExpenseBillable(e) {
			summary.BillableCount++
		} else {
			summary.NonBillableCount++
		}
	}

	summary.ByStatus = statusCounts(grouping.CountBy(expenses, func(e domain.ExpenseRecord) string { return e.Status }))
	summary.ByType = statusCounts(grouping.CountBy(expenses, func(e domain.ExpenseRecord) string { return e.ExpenseType }))

	return summary, nil
}

func statusCounts(entries []grouping.Entry) []domain.StatusCount {
	out := make([]domain.StatusCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.StatusCount{Key: e.Key, Count: int(e.Value)})
	}
	return out
}
