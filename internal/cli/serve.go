package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/config"
	"github.com/evcraddock/client-tracker/internal/db"
	"github.com/evcraddock/client-tracker/internal/logging"
	"github.com/evcraddock/client-tracker/internal/web"
)

type serveFlags struct {
	addr       string
	dbPath     string
	configPath string
	dev        bool
	logLevel   string
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start the HTTP server for the web UI and JSON API. Settings come from defaults, the --config file, CT_* environment variables and flags, in increasing priority.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "SQLite database path (default: ~/.client-tracker/clients.db)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default: $CT_CONFIG)")
	cmd.Flags().BoolVar(&f.dev, "dev", false, "development mode: console logging at debug level")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	return cmd
}

func runServe(cmd *cobra.Command, f serveFlags) error {
	path := f.configPath
	if path == "" {
		path = os.Getenv("CT_CONFIG")
	}

	overrides := &config.Config{
		Server:  config.Server{Address: f.addr},
		Storage: config.Storage{DBPath: f.dbPath},
		Log:     config.Log{Level: f.logLevel},
	}
	if cmd.Flags().Changed("dev") {
		overrides.Log.Dev = &f.dev
	}

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.Log.DevMode(), cfg.Log.Level)

	database, err := db.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("closing database")
		}
	}()
	logger.Info().Str("path", cfg.Storage.DBPath).Msg("database ready")

	srv, err := web.NewServer(database, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, cfg.Server)
}
