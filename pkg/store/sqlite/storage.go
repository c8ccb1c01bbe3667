package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const taskTableSchema = `
	CREATE TABLE IF NOT EXISTS task_records (
		id VARCHAR NOT NULL PRIMARY KEY,
		date VARCHAR NOT NULL,
		client VARCHAR NOT NULL,
		project VARCHAR NOT NULL,
		phase VARCHAR NOT NULL,
		hours DOUBLE NOT NULL,
		details VARCHAR NOT NULL DEFAULT '',
		username VARCHAR NOT NULL DEFAULT ''
	);
`

const expenseTableSchema = `
	CREATE TABLE IF NOT EXISTS expense_records (
		id VARCHAR NOT NULL PRIMARY KEY,
		date VARCHAR NOT NULL,
		client VARCHAR NOT NULL,
		project VARCHAR NOT NULL DEFAULT '',
		expense_type VARCHAR NOT NULL,
		status VARCHAR NOT NULL
	);
`

const flagTableSchema = `
	CREATE TABLE IF NOT EXISTS billing_flags (
		category VARCHAR NOT NULL,
		subcategory VARCHAR NOT NULL,
		item_value VARCHAR NOT NULL,
		non_billable BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (category, subcategory, item_value)
	);
`

var bootQueries = []string{
	taskTableSchema,
	expenseTableSchema,
	flagTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}
