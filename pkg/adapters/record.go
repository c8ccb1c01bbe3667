package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/domain"
	"github.com/de-tools/work-atlas/pkg/models/store"
)

const dayFormat = "2006-01-02"

func MapStoreTaskRowToDomain(row store.TaskRow) (domain.TaskRecord, error) {
	date, err := time.Parse(dayFormat, row.Date)
	if err != nil {
		return domain.TaskRecord{}, fmt.Errorf("parse task date %q: %w", row.Date, err)
	}

	return domain.TaskRecord{
		Date:     date,
		Client:   row.Client,
		Project:  row.Project,
		Phase:    row.Phase,
		Hours:    row.Hours,
		Details:  row.Details,
		Username: row.Username,
	}, nil
}

func MapStoreExpenseRowToDomain(row store.ExpenseRow) (domain.ExpenseRecord, error) {
	date, err := time.Parse(dayFormat, row.Date)
	if err != nil {
		return domain.ExpenseRecord{}, fmt.Errorf("parse expense date %q: %w", row.Date, err)
	}

	return domain.ExpenseRecord{
		Date:        date,
		Client:      row.Client,
		Project:     row.Project,
		ExpenseType: row.ExpenseType,
		Status:      row.Status,
	}, nil
}

func MapStoreFlagRowToDomain(row store.FlagRow) domain.BillingFlag {
	return domain.BillingFlag{
		Category:    domain.FlagCategory(row.Category),
		Subcategory: domain.FlagSubcategory(row.Subcategory),
		ItemValue:   row.ItemValue,
		NonBillable: row.NonBillable,
	}
}

func MapDomainTaskToStoreRow(task domain.TaskRecord, id string) store.TaskRow {
	return store.TaskRow{
		ID:       id,
		Date:     task.Date.Format(dayFormat),
		Client:   task.Client,
		Project:  task.Project,
		Phase:    task.Phase,
		Hours:    task.Hours,
		Details:  task.Details,
		Username: task.Username,
	}
}

func MapDomainExpenseToStoreRow(expense domain.ExpenseRecord, id string) store.ExpenseRow {
	return store.ExpenseRow{
		ID:          id,
		Date:        expense.Date.Format(dayFormat),
		Client:      expense.Client,
		Project:     expense.Project,
		ExpenseType: expense.ExpenseType,
		Status:      expense.Status,
	}
}
