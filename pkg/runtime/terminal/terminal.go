package terminal

import (
	"io"
	"os"

	"github.com/de-tools/work-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/work-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/work-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	analytics report.Analytics
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analytics report.Analytics
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		analytics: opts.Analytics,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Time and expense reporting tool",
	}

	cmd.AddCommand(commands.NewDashboardCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewClientsCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewWeeklyCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewMonthlyCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewActivitiesCmd(cli.analytics, cli.reporter))
	cmd.AddCommand(commands.NewUsersCmd(cli.analytics, cli.reporter))

	return cmd
}
