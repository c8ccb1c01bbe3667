package store

// TaskRow mirrors the task_records table. Dates travel as YYYY-MM-DD strings;
// the record layer parses them into calendar days.
type TaskRow struct {
	ID       string
	Date     string
	Client   string
	Project  string
	Phase    string
	Hours    float64
	Details  string
	Username string
}

type ExpenseRow struct {
	ID          string
	Date        string
	Client      string
	Project     string
	ExpenseType string
	Status      string
}

type FlagRow struct {
	Category    string
	Subcategory string
	ItemValue   string
	NonBillable bool
}
