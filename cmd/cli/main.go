package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/work-atlas/pkg/runtime/terminal"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/de-tools/work-atlas/pkg/services/records"
	"github.com/de-tools/work-atlas/pkg/services/report"
	"github.com/de-tools/work-atlas/pkg/store/sqlite"
	"github.com/de-tools/work-atlas/pkg/store/sqlite/record"
	"github.com/spf13/viper"
)

func main() {
	viper.AutomaticEnv()
	viper.SetDefault("DB_PATH", "work-atlas.db")

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: viper.GetString("DB_PATH")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recordStore, err := record.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	manager := records.NewManager(recordStore)

	index := billing.NewIndex()
	if err := index.LoadFrom(context.Background(), manager); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Analytics: report.NewAnalytics(manager, manager, billing.NewEvaluator(index)),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
