package domain

import "time"

// DashboardSummary is the landing-page rollup. WeekHours always covers the
// current Monday-start week regardless of the requested range; the week figure
// is a live reference point, not part of the caller's selection.
type DashboardSummary struct {
	MonthHours  float64
	WeekHours   float64
	TopClient   string
	TopProject  string
	AvgDaily    float64
	ClientCount int
}

type ClientHours struct {
	Client     string
	Hours      float64
	Percentage float64
}

type ProjectHours struct {
	Project string
	Hours   float64
	Phases  []PhaseBreakdown
}

// PhaseBreakdown is the nested per-project phase split; absolute hours only.
type PhaseBreakdown struct {
	Phase string
	Hours float64
}

type PhaseHours struct {
	Phase      string
	Hours      float64
	Percentage float64
}

type DayHours struct {
	Date  time.Time
	Hours float64
}

// WeekSummary covers one Monday-start week. Change is the percent delta
// versus the nearest older week that has data, 0 when there is none.
type WeekSummary struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	TotalHours float64
	TopClients []ClientHours
	Change     float64
}

type MonthSummary struct {
	Year       int
	Month      time.Month
	TotalHours float64
	TopClients []ClientHours
}

// Activity is a deduplicated top-activity entry keyed on trimmed details text.
type Activity struct {
	Details  string
	Client   string
	Project  string
	Hours    float64
	LastDate time.Time
}

type UserSummary struct {
	Username         string
	TotalHours       float64
	BillableHours    float64
	NonBillableHours float64
	TaskCount        int
	AvgDaily         float64
	TopClient        string
	TopProject       string
	LastActivity     time.Time
}

type UserHours struct {
	Username   string
	Hours      float64
	Percentage float64
}

type UserActivity struct {
	Username string
	Date     time.Time
	Hours    float64
}

type ExpenseSummary struct {
	TotalCount       int
	BillableCount    int
	NonBillableCount int
	ByStatus         []StatusCount
	ByType           []StatusCount
}

type StatusCount struct {
	Key   string
	Count int
}
