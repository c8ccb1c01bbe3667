package adapters

import (
	"github.com/de-tools/work-atlas/pkg/models/api"
	"github.com/de-tools/work-atlas/pkg/models/domain"
)

func MapDashboardSummaryDomainToApi(s domain.DashboardSummary) api.DashboardSummary {
	return api.DashboardSummary{
		MonthHours:  s.MonthHours,
		WeekHours:   s.WeekHours,
		TopClient:   s.TopClient,
		TopProject:  s.TopProject,
		AvgDaily:    s.AvgDaily,
		ClientCount: s.ClientCount,
	}
}

func MapClientHoursDomainToApi(entries []domain.ClientHours) []api.ClientHours {
	out := make([]api.ClientHours, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.ClientHours{Client: e.Client, Hours: e.Hours, Percentage: e.Percentage})
	}
	return out
}

func MapProjectHoursDomainToApi(entries []domain.ProjectHours) []api.ProjectHours {
	out := make([]api.ProjectHours, 0, len(entries))
	for _, e := range entries {
		phases := make([]api.PhaseBreakdown, 0, len(e.Phases))
		for _, p := range e.Phases {
			phases = append(phases, api.PhaseBreakdown{Phase: p.Phase, Hours: p.Hours})
		}
		out = append(out, api.ProjectHours{Project: e.Project, Hours: e.Hours, Phases: phases})
	}
	return out
}

func MapPhaseHoursDomainToApi(entries []domain.PhaseHours) []api.PhaseHours {
	out := make([]api.PhaseHours, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.PhaseHours{Phase: e.Phase, Hours: e.Hours, Percentage: e.Percentage})
	}
	return out
}

func MapDayHoursDomainToApi(entries []domain.DayHours) []api.DayHours {
	out := make([]api.DayHours, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.DayHours{Date: e.Date.Format(dayFormat), Hours: e.Hours})
	}
	return out
}

func MapWeekSummariesDomainToApi(entries []domain.WeekSummary) []api.WeekSummary {
	out := make([]api.WeekSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.WeekSummary{
			WeekStart:  e.WeekStart.Format(dayFormat),
			WeekEnd:    e.WeekEnd.Format(dayFormat),
			TotalHours: e.TotalHours,
			TopClients: MapClientHoursDomainToApi(e.TopClients),
			Change:     e.Change,
		})
	}
	return out
}

func MapMonthSummariesDomainToApi(entries []domain.MonthSummary) []api.MonthSummary {
	out := make([]api.MonthSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.MonthSummary{
			Year:       e.Year,
			Month:      e.Month.String(),
			TotalHours: e.TotalHours,
			TopClients: MapClientHoursDomainToApi(e.TopClients),
		})
	}
	return out
}

func MapActivitiesDomainToApi(entries []domain.Activity) []api.Activity {
	out := make([]api.Activity, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.Activity{
			Details:  e.Details,
			Client:   e.Client,
			Project:  e.Project,
			Hours:    e.Hours,
			LastDate: e.LastDate.Format(dayFormat),
		})
	}
	return out
}

func MapUserSummariesDomainToApi(entries []domain.UserSummary) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.UserSummary{
			Username:         e.Username,
			TotalHours:       e.TotalHours,
			BillableHours:    e.BillableHours,
			NonBillableHours: e.NonBillableHours,
			TaskCount:        e.TaskCount,
			AvgDaily:         e.AvgDaily,
			TopClient:        e.TopClient,
			TopProject:       e.TopProject,
			LastActivity:     e.LastActivity,
		})
	}
	return out
}

func MapUserHoursDomainToApi(entries []domain.UserHours) []api.UserHours {
	out := make([]api.UserHours, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.UserHours{Username: e.Username, Hours: e.Hours, Percentage: e.Percentage})
	}
	return out
}

func MapUserActivitiesDomainToApi(entries []domain.UserActivity) []api.UserActivity {
	out := make([]api.UserActivity, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.UserActivity{
			Username: e.Username,
			Date:     e.Date.Format(dayFormat),
			Hours:    e.Hours,
		})
	}
	return out
}

func MapExpenseSummaryDomainToApi(s domain.ExpenseSummary) api.ExpenseSummary {
	return api.ExpenseSummary{
		TotalCount:       s.TotalCount,
		BillableCount:    s.BillableCount,
		NonBillableCount: s.NonBillableCount,
		ByStatus:         mapStatusCounts(s.ByStatus),
		ByType:           mapStatusCounts(s.ByType),
	}
}

func mapStatusCounts(entries []domain.StatusCount) []api.StatusCount {
	out := make([]api.StatusCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.StatusCount{Key: e.Key, Count: e.Count})
	}
	return out
}
