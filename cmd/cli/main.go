package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/cmd/cli/commands"
	"github.com/okulnobet/duty-roster/internal/config"
	"github.com/okulnobet/duty-roster/pkg/clients/sheetsclient"
	"github.com/okulnobet/duty-roster/pkg/db"
	"github.com/okulnobet/duty-roster/pkg/drafts"
	"github.com/okulnobet/duty-roster/pkg/postgres"
	"github.com/okulnobet/duty-roster/pkg/sheetssql"
	"github.com/okulnobet/duty-roster/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
	pgDB    *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duty",
		Short: "Okul nöbet çizelgesi - weekly duty rosters for school staff",
		Long: `A CLI tool for planning weekly teacher duty rosters: generate balanced
assignments, edit them by hand, save them and publish them to a spreadsheet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pgDB != nil {
				pgDB.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects duty_config.<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	rootCmd.AddCommand(commands.SeedAreasCmd(app))
	rootCmd.AddCommand(commands.ListAreasCmd(app))
	rootCmd.AddCommand(commands.ListTeachersCmd(app))
	rootCmd.AddCommand(commands.SyncTeachersCmd(app))
	rootCmd.AddCommand(commands.WeeksCmd(app))
	rootCmd.AddCommand(commands.ShowCmd(app))
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.UnassignCmd(app))
	rootCmd.AddCommand(commands.ResetCmd(app))
	rootCmd.AddCommand(commands.SaveCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.ReportCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Now = time.Now

	logEnv := env
	if logEnv == "" {
		logEnv = "default"
	}
	app.Logger, err = logging.InitLogger(logEnv, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", logEnv))

	app.Cfg, err = config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("backend", app.Cfg.Backend))

	if app.Cfg.NeedsGoogle() {
		oauthCfg, err := config.LoadOAuthClient(env)
		if err != nil {
			return fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, oauthCfg, env, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		app.Logger.Debug("Sheets client initialized")
	}

	switch app.Cfg.Backend {
	case config.BackendPostgres:
		pgDB, err = postgres.NewDB(app.Ctx, app.Cfg.PostgresURL, app.Logger)
		if err != nil {
			return err
		}
		if err := pgDB.RunMigrations(app.Ctx); err != nil {
			return err
		}
		app.Database = pgDB
		app.TeacherSink = pgDB
		app.Teachers = pgDB

	case config.BackendSheets:
		schema, err := db.Schema()
		if err != nil {
			return fmt.Errorf("failed to create database schema: %w", err)
		}
		app.Logger.Debug("Connecting to database", zap.String("spreadsheet_id", app.Cfg.DatabaseSheetID))
		ssqlDB, err := sheetssql.NewDB(app.SheetsClient, app.Cfg.DatabaseSheetID, schema)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.Database = db.NewDB(ssqlDB)
	}

	if app.Cfg.StaffSheetID != "" {
		app.Teachers = app.SheetsClient.StaffSheet(app.Cfg.StaffSheetID, app.Cfg.StaffTab)
	}

	app.Drafts = drafts.NewStore(app.Cfg.DraftDir)
	app.Closures = commands.ClosureRules(app.Cfg.Closures)

	app.Logger.Debug("Application initialized")
	return nil
}
