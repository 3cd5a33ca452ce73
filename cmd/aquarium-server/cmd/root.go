package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/aquarium/internal/config"
	"github.com/oshokin/aquarium/internal/service/aquarium"
	"github.com/oshokin/aquarium/internal/service/probe"
	"github.com/oshokin/aquarium/internal/service/server"
	"github.com/oshokin/aquarium/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// databasePath overrides the SQLite database file from the configuration.
	databasePath string
	// envFile is the dotenv file exported before AQUARIUM_* variables are read.
	envFile string
	// verbose enables debug logs regardless of log_level.
	verbose bool
	// probeWait is how long the probe command retries before failing.
	probeWait time.Duration

	// rootCmd represents the base command for running the aquarium server.
	rootCmd = &cobra.Command{
		Use:   "aquarium-server [listen-address]",
		Short: "Run the aquarium REST API and fish simulation.",
		Long: `Starts the aquarium server that manages aquariums and fish over a REST API.

The server listens on the specified address or uses http_address from the configuration file.
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
A background scheduler advances the simulation every stats_interval (hunger, health, water
clearness) and every aging_interval (fish age). Data is stored in a SQLite database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, newOptions(listenAddress))
		},
	}

	// tickCmd runs a single simulation pass and exits.
	tickCmd = &cobra.Command{
		Use:       "tick {stats|ages}",
		Short:     "Run one simulation pass against the database.",
		Long:      "Runs one stats pass (hunger, health, clearness) or one aging pass over every aquarium and exits. Useful for cron-driven deployments and manual testing.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{server.PassStats, server.PassAges},
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := server.Tick(cmd.Context(), newOptions(""), args[0])
			writeReport(cmd.OutOrStdout(), report)

			return err
		},
	}

	// probeCmd checks the gRPC health endpoint of a running server.
	probeCmd = &cobra.Command{
		Use:   "probe [grpc-address]",
		Short: "Check that a running server reports SERVING.",
		Long: `Queries the gRPC health endpoint of a running aquarium server and exits with a non-zero
status unless it reports SERVING. The address defaults to grpc_address from the configuration file.
Use --wait to keep retrying, e.g. while the server starts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var address string
			if len(args) > 0 {
				address = args[0]
			}

			return probe.Run(cmd.Context(), &probe.Options{
				ConfigPath: configPath,
				Address:    address,
				Wait:       probeWait,
			})
		},
	}
)

// writeReport prints the pass summary. A partially failed pass still has one.
func writeReport(w io.Writer, report *aquarium.PassReport) {
	if report == nil {
		return
	}

	_, _ = fmt.Fprintf(w,
		"processed: %d, failed: %d, removed fish: %d, took: %s\n",
		report.Processed, report.Failed, report.RemovedFish, report.Duration)
}

// newOptions builds server options from the persistent flags.
func newOptions(listenAddress string) *server.Options {
	return &server.Options{
		ConfigPath:    configPath,
		EnvFile:       envFile,
		ListenAddress: listenAddress,
		DatabasePath:  databasePath,
		Verbose:       verbose,
	}
}

// Execute runs the aquarium-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&databasePath, "db", "d", "", "path to the SQLite database (overrides database_path)")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", config.DefaultEnvFilename, "path to an optional dotenv file")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "log debug messages regardless of log_level")

	probeCmd.Flags().DurationVarP(&probeWait, "wait", "w", 0, "keep retrying for this long before failing")

	rootCmd.AddCommand(tickCmd, probeCmd)
}
