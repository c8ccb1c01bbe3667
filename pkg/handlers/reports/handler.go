package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/work-atlas/pkg/adapters"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/de-tools/work-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

const dateParamFormat = "2006-01-02"

type Handler struct {
	analytics report.Analytics
	index     *billing.Index
	flags     billing.FlagSource
}

func NewHandler(analytics report.Analytics, index *billing.Index, flags billing.FlagSource) *Handler {
	return &Handler{
		analytics: analytics,
		index:     index,
		flags:     flags,
	}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.Dashboard(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build dashboard summary")
		return
	}
	respondJSON(w, r, adapters.MapDashboardSummaryDomainToApi(summary))
}

func (h *Handler) TimeByClient(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	entries, err := h.analytics.TimeByClient(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build client breakdown")
		return
	}
	respondJSON(w, r, adapters.MapClientHoursDomainToApi(entries))
}

func (h *Handler) TimeByProject(w http.ResponseWriter, r *http.Request) {
	rangeOpts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}
	opts := report.ProjectOptions{
		RangeOptions: rangeOpts,
		Client:       r.URL.Query().Get("client"),
	}

	entries, err := h.analytics.TimeByProject(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build project breakdown")
		return
	}
	respondJSON(w, r, adapters.MapProjectHoursDomainToApi(entries))
}

func (h *Handler) TimeByPhase(w http.ResponseWriter, r *http.Request) {
	rangeOpts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}
	opts := report.PhaseOptions{
		RangeOptions: rangeOpts,
		Project:      r.URL.Query().Get("project"),
	}

	entries, err := h.analytics.TimeByPhase(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build phase breakdown")
		return
	}
	respondJSON(w, r, adapters.MapPhaseHoursDomainToApi(entries))
}

func (h *Handler) DailyHours(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	entries, err := h.analytics.DailyHours(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build daily series")
		return
	}
	respondJSON(w, r, adapters.MapDayHoursDomainToApi(entries))
}

func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	weeks, err := h.analytics.WeeklySummary(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build weekly summary")
		return
	}
	respondJSON(w, r, adapters.MapWeekSummariesDomainToApi(weeks))
}

func (h *Handler) MonthlyComparison(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	months, err := h.analytics.MonthlyComparison(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build monthly comparison")
		return
	}
	respondJSON(w, r, adapters.MapMonthSummariesDomainToApi(months))
}

func (h *Handler) TopActivities(w http.ResponseWriter, r *http.Request) {
	rangeOpts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}
	opts := report.ActivityOptions{RangeOptions: rangeOpts}
	if raw := r.URL.Query().Get("min_hours"); raw != "" {
		minHours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid 'min_hours' value. Expected a number", http.StatusBadRequest)
			return
		}
		opts.MinHours = minHours
	}

	activities, err := h.analytics.TopActivities(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build top activities")
		return
	}
	respondJSON(w, r, adapters.MapActivitiesDomainToApi(activities))
}

func (h *Handler) UserSummaries(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	summaries, err := h.analytics.UserSummaries(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build user summaries")
		return
	}
	respondJSON(w, r, adapters.MapUserSummariesDomainToApi(summaries))
}

func (h *Handler) HoursByUser(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	entries, err := h.analytics.HoursByUser(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build user hours")
		return
	}
	respondJSON(w, r, adapters.MapUserHoursDomainToApi(entries))
}

func (h *Handler) UserActivityTimeline(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	entries, err := h.analytics.UserActivityTimeline(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build user timeline")
		return
	}
	respondJSON(w, r, adapters.MapUserActivitiesDomainToApi(entries))
}

func (h *Handler) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseRangeOptions(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.ExpenseSummary(r.Context(), opts)
	if err != nil {
		respondError(w, r, err, "failed to build expense summary")
		return
	}
	respondJSON(w, r, adapters.MapExpenseSummaryDomainToApi(summary))
}

// ReloadFlags rebuilds the billing flag snapshot from the flag source and
// swaps it in atomically.
func (h *Handler) ReloadFlags(w http.ResponseWriter, r *http.Request) {
	if err := h.index.LoadFrom(r.Context(), h.flags); err != nil {
		respondError(w, r, err, "failed to reload billing flags")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseRangeOptions(w http.ResponseWriter, r *http.Request) (report.RangeOptions, bool) {
	from, err := parseDateParam(r, "from")
	if err != nil {
		http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return report.RangeOptions{}, false
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return report.RangeOptions{}, false
	}
	return report.RangeOptions{Start: from, End: to}, true
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateParamFormat, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}
