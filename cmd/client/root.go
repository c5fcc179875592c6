package main

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cli holds the state shared by every subcommand.
type cli struct {
	ui        *tui.TUI
	buildInfo models.AppBuildInfo
	flags     globalFlags

	// newApp is replaced in tests.
	newApp func(cmd *cobra.Command, cfg *config.ClientConfig) (*client.App, error)
}

type globalFlags struct {
	configPath      string
	serverAddress   string
	dbPath          string
	logFile         string
	syncInterval    time.Duration
	syncConcurrency int
	otlpEndpoint    string
}

func newRootCmd(ui *tui.TUI, buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{ui: ui, buildInfo: buildInfo}
	c.newApp = c.openApp

	root := &cobra.Command{
		Use:           "note-sync",
		Short:         "Keep notes locally and synchronize them with the note server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.bindGlobalFlags(root.PersistentFlags())

	root.AddGroup(
		&cobra.Group{ID: "account", Title: "Account:"},
		&cobra.Group{ID: "notes", Title: "Notes:"},
		&cobra.Group{ID: "sync", Title: "Synchronization:"},
	)

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.noteCmd(),
		c.syncCmd(),
		c.daemonCmd(),
		c.versionCmd(),
	)

	return root
}

func (c *cli) bindGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.flags.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVarP(&c.flags.serverAddress, "server", "s", "", "note server address, e.g. localhost:8080")
	fs.StringVar(&c.flags.dbPath, "db", "", "local SQLite database file")
	fs.StringVar(&c.flags.logFile, "log-file", "", "client log file")
	fs.DurationVar(&c.flags.syncInterval, "sync-interval", 0, "period of background sync passes, e.g. 1m")
	fs.IntVar(&c.flags.syncConcurrency, "sync-concurrency", 0, "actions applied in parallel by one pass")
	fs.StringVar(&c.flags.otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector host:port")
}

// overrides turns the global flags into the highest-priority config source.
func (c *cli) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		FilePath: c.flags.configPath,
		Adapter:  config.Adapter{HTTPAddress: c.flags.serverAddress},
		Storage:  config.Storage{DB: config.DB{DSN: c.flags.dbPath}},
		Workers: config.Workers{
			SyncInterval:    c.flags.syncInterval,
			SyncConcurrency: c.flags.syncConcurrency,
		},
		Telemetry: config.Telemetry{
			OTLPEndpoint: c.flags.otlpEndpoint,
		},
		Log: config.Log{File: c.flags.logFile},
	}
}

// withApp loads the config, opens the App for the duration of run and closes
// it afterwards.
func (c *cli) withApp(run func(cmd *cobra.Command, args []string, app *client.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.GetClientConfig(c.overrides())
		if err != nil {
			return err
		}

		app, err := c.newApp(cmd, cfg)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, app.Close())
		}()

		return run(cmd, args, app)
	}
}

func (c *cli) openApp(cmd *cobra.Command, cfg *config.ClientConfig) (*client.App, error) {
	log := logger.NewClientLogger("note-sync-client", cfg.LogFile)
	return client.NewApp(cmd.Context(), cfg, c.ui, c.buildInfo, log)
}
