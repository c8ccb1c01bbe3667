package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/work-atlas/pkg/server"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/de-tools/work-atlas/pkg/services/records"
	"github.com/de-tools/work-atlas/pkg/services/report"
	"github.com/de-tools/work-atlas/pkg/store/sqlite"
	"github.com/de-tools/work-atlas/pkg/store/sqlite/record"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dbPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the reporting web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "",
		"Path to the sqlite record database (overrides DB_PATH)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_HOST", "localhost")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_PATH", "work-atlas.db")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if dbPath == "" {
		dbPath = viper.GetString("DB_PATH")
	}

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: dbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open record database: %w", err)
	}

	recordStore, err := record.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}
	manager := records.NewManager(recordStore)

	index := billing.NewIndex()
	go func() {
		// Reports stay available while flags load; unknown items read as
		// billable until the first snapshot lands.
		if err := index.LoadFrom(ctx, manager); err != nil {
			logger.Error().Err(err).Msg("initial billing flag load failed")
		}
	}()

	analytics := report.NewAnalytics(manager, manager, billing.NewEvaluator(index))

	addr := net.JoinHostPort(viper.GetString("SERVER_HOST"), viper.GetString("SERVER_PORT"))

	shutdownTimeout := viper.GetDuration("SHUTDOWN_TIMEOUT")
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: shutdownTimeout,
		Dependencies: server.Dependencies{
			Analytics:  analytics,
			FlagIndex:  index,
			FlagSource: manager,
			Logger:     logger,
		},
	})

	return api.Start()
}
