package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/work-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/work-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

const (
	dateFlagFormat = "2006-01-02"
	runTimeout     = 60 * time.Second
)

type rangeFlags struct {
	from string
	to   string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Window end (YYYY-MM-DD)")
}

func (f *rangeFlags) options() (report.RangeOptions, error) {
	var opts report.RangeOptions
	if f.from != "" {
		from, err := time.Parse(dateFlagFormat, f.from)
		if err != nil {
			return opts, fmt.Errorf("invalid --from date %q: expected YYYY-MM-DD", f.from)
		}
		opts.Start = &from
	}
	if f.to != "" {
		to, err := time.Parse(dateFlagFormat, f.to)
		if err != nil {
			return opts, fmt.Errorf("invalid --to date %q: expected YYYY-MM-DD", f.to)
		}
		opts.End = &to
	}
	return opts, nil
}

func runContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), runTimeout)
}

func NewDashboardCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			summary, err := analytics.Dashboard(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to build dashboard summary: %w", err)
			}
			return reporter.Dashboard(summary)
		},
	}
	flags.register(cmd)
	return cmd
}

func NewClientsCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Break down hours by client",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			entries, err := analytics.TimeByClient(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to build client breakdown: %w", err)
			}
			return reporter.Clients(entries)
		},
	}
	flags.register(cmd)
	return cmd
}

func NewWeeklyCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Weekly rollup with week-over-week change",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			weeks, err := analytics.WeeklySummary(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to build weekly summary: %w", err)
			}
			return reporter.Weekly(weeks)
		},
	}
	flags.register(cmd)
	return cmd
}

func NewMonthlyCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Month-by-month comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			months, err := analytics.MonthlyComparison(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to build monthly comparison: %w", err)
			}
			return reporter.Monthly(months)
		},
	}
	flags.register(cmd)
	return cmd
}

func NewActivitiesCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	var minHours float64
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Top activities by accumulated hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeOpts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			activities, err := analytics.TopActivities(ctx, report.ActivityOptions{
				RangeOptions: rangeOpts,
				MinHours:     minHours,
			})
			if err != nil {
				return fmt.Errorf("failed to build top activities: %w", err)
			}
			return reporter.Activities(activities)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&minHours, "min-hours", 0, "Drop activities below this many accumulated hours")
	return cmd
}

func NewUsersCmd(analytics report.Analytics, reporter *export.Reporter) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Per-user billability summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			ctx, cancel := runContext()
			defer cancel()

			summaries, err := analytics.UserSummaries(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to build user summaries: %w", err)
			}
			return reporter.Users(summaries)
		},
	}
	flags.register(cmd)
	return cmd
}
