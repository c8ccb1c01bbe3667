package api

import "time"

type DashboardSummary struct {
	MonthHours  float64 `json:"month_hours"`
	WeekHours   float64 `json:"week_hours"`
	TopClient   string  `json:"top_client"`
	TopProject  string  `json:"top_project"`
	AvgDaily    float64 `json:"avg_daily"`
	ClientCount int     `json:"client_count"`
}

type ClientHours struct {
	Client     string  `json:"client"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

type ProjectHours struct {
	Project string           `json:"project"`
	Hours   float64          `json:"hours"`
	Phases  []PhaseBreakdown `json:"phases"`
}

type PhaseBreakdown struct {
	Phase string  `json:"phase"`
	Hours float64 `json:"hours"`
}

type PhaseHours struct {
	Phase      string  `json:"phase"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

type DayHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type WeekSummary struct {
	WeekStart  string        `json:"week_start"`
	WeekEnd    string        `json:"week_end"`
	TotalHours float64       `json:"total_hours"`
	TopClients []ClientHours `json:"top_clients"`
	Change     float64       `json:"change"`
}

type MonthSummary struct {
	Year       int           `json:"year"`
	Month      string        `json:"month"`
	TotalHours float64       `json:"total_hours"`
	TopClients []ClientHours `json:"top_clients"`
}

type Activity struct {
	Details  string  `json:"details"`
	Client   string  `json:"client"`
	Project  string  `json:"project"`
	Hours    float64 `json:"hours"`
	LastDate string  `json:"last_date"`
}

type UserSummary struct {
	Username         string    `json:"username"`
	TotalHours       float64   `json:"total_hours"`
	BillableHours    float64   `json:"billable_hours"`
	NonBillableHours float64   `json:"non_billable_hours"`
	TaskCount        int       `json:"task_count"`
	AvgDaily         float64   `json:"avg_daily"`
	TopClient        string    `json:"top_client"`
	TopProject       string    `json:"top_project"`
	LastActivity     time.Time `json:"last_activity"`
}

type UserHours struct {
	Username   string  `json:"username"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

type UserActivity struct {
	Username string  `json:"username"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
}

type ExpenseSummary struct {
	TotalCount       int           `json:"total_count"`
	BillableCount    int           `json:"billable_count"`
	NonBillableCount int           `json:"non_billable_count"`
	ByStatus         []StatusCount `json:"by_status"`
	ByType           []StatusCount `json:"by_type"`
}

type StatusCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
