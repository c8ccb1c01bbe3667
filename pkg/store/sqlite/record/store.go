// Package record persists and queries the raw task/expense/flag rows. The
// report engine only ever reads through the window queries; Add* exist for
// the host's ingestion path and the test fixtures.
package record

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/work-atlas/pkg/models/store"
)

type Store interface {
	AddTasks(ctx context.Context, rows []store.TaskRow) error
	AddExpenses(ctx context.Context, rows []store.ExpenseRow) error
	AddFlags(ctx context.Context, rows []store.FlagRow) error
	GetTasks(ctx context.Context, start, end time.Time) ([]store.TaskRow, error)
	GetExpenses(ctx context.Context, start, end time.Time) ([]store.ExpenseRow, error)
	ListFlags(ctx context.Context) ([]store.FlagRow, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

const dayFormat = "2006-01-02"

func (s *recordStore) AddTasks(ctx context.Context, rows []store.TaskRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO task_records (id, date, client, project, phase, hours, details, username)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.ExecContext(ctx,
			row.ID, row.Date, row.Client, row.Project, row.Phase, row.Hours, row.Details, row.Username)
		if err != nil {
			return fmt.Errorf("insert task record: %w", err)
		}
	}
	return nil
}

func (s *recordStore) AddExpenses(ctx context.Context, rows []store.ExpenseRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO expense_records (id, date, client, project, expense_type, status)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.ExecContext(ctx,
			row.ID, row.Date, row.Client, row.Project, row.ExpenseType, row.Status)
		if err != nil {
			return fmt.Errorf("insert expense record: %w", err)
		}
	}
	return nil
}

func (s *recordStore) AddFlags(ctx context.Context, rows []store.FlagRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO billing_flags (category, subcategory, item_value, non_billable)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (category, subcategory, item_value) DO UPDATE SET non_billable = excluded.non_billable`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.ExecContext(ctx, row.Category, row.Subcategory, row.ItemValue, row.NonBillable)
		if err != nil {
			return fmt.Errorf("insert billing flag: %w", err)
		}
	}
	return nil
}

func (s *recordStore) GetTasks(ctx context.Context, start, end time.Time) ([]store.TaskRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, client, project, phase, hours, details, username
		FROM task_records
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`,
		start.Format(dayFormat), end.Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	out := make([]store.TaskRow, 0)
	for rows.Next() {
		var row store.TaskRow
		if err := rows.Scan(&row.ID, &row.Date, &row.Client, &row.Project, &row.Phase,
			&row.Hours, &row.Details, &row.Username); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *recordStore) GetExpenses(ctx context.Context, start, end time.Time) ([]store.ExpenseRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, client, project, expense_type, status
		FROM expense_records
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`,
		start.Format(dayFormat), end.Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]store.ExpenseRow, 0)
	for rows.Next() {
		var row store.ExpenseRow
		if err := rows.Scan(&row.ID, &row.Date, &row.Client, &row.Project,
			&row.ExpenseType, &row.Status); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *recordStore) ListFlags(ctx context.Context) ([]store.FlagRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, subcategory, item_value, non_billable
		FROM billing_flags`)
	if err != nil {
		return nil, fmt.Errorf("query billing flags: %w", err)
	}
	defer rows.Close()

	out := make([]store.FlagRow, 0)
	for rows.Next() {
		var row store.FlagRow
		if err := rows.Scan(&row.Category, &row.Subcategory, &row.ItemValue, &row.NonBillable); err != nil {
			return nil, fmt.Errorf("scan flag row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
