package billing

import "github.com/de-tools/work-atlas/pkg/models/domain"

// Evaluator combines per-dimension flags into a single verdict. A record is
// billable iff every dimension it touches is billable; one non-billable
// dimension makes the whole record non-billable.
type Evaluator struct {
	index *Index
}

func NewEvaluator(index *Index) *Evaluator {
	return &Evaluator{index: index}
}

func (e *Evaluator) IsTaskBillable(task domain.TaskRecord) bool {
	return e.index.Billable(domain.CategoryClient, domain.SubcategoryTask, task.Client) &&
		e.index.Billable(domain.CategoryProject, domain.SubcategoryTask, task.Project) &&
		e.index.Billable(domain.CategoryPhase, domain.SubcategoryTask, task.Phase)
}

func (e *Evaluator) IsExpenseBillable(expense domain.ExpenseRecord) bool {
	return e.index.Billable(domain.CategoryClient, domain.SubcategoryExpense, expense.Client) &&
		e.index.Billable(domain.CategoryProject, domain.SubcategoryExpense, expense.Project) &&
		e.index.Billable(domain.CategoryExpenseType, domain.SubcategoryExpense, expense.ExpenseType)
}
