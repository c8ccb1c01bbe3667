package domain

import "time"

// TaskRecord is a single time entry. Records are immutable once fetched;
// aggregation never mutates them.
type TaskRecord struct {
	Date     time.Time // calendar day, midnight UTC
	Client   string
	Project  string
	Phase    string
	Hours    float64
	Details  string
	Username string
}

type ExpenseRecord struct {
	Date        time.Time
	Client      string
	Project     string // optional, empty when the expense is not project-bound
	ExpenseType string
	Status      string
}
