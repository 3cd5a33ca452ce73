package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/aquarium/internal/config"
	"github.com/oshokin/aquarium/internal/logger"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
	"github.com/oshokin/aquarium/internal/scheduler"
	"github.com/oshokin/aquarium/internal/service/aquarium"
)

// Names of the simulation passes accepted by Tick.
const (
	// PassStats is the hunger/health/clearness update.
	PassStats = "stats"
	// PassAges is the age update.
	PassAges = "ages"
)

// ErrUnknownPass is returned by Tick for names other than PassStats and PassAges.
var ErrUnknownPass = errors.New("unknown simulation pass")

// application bundles the dependencies shared by Run and Tick.
// It is unexported to keep the commands decoupled from the wiring.
type application struct {
	// settings is the validated configuration.
	settings *config.Config
	// repo is the opened SQLite store.
	repo *repo.SQLiteRepository
	// service implements the aquarium operations.
	service *aquarium.Service
}

// setup loads configuration, configures logging and opens the database.
func setup(ctx context.Context, opts *Options) (*application, error) {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if err = logger.Configure(settings.LogLevel, logger.Encoding(settings.LogEncoding)); err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}

	// Use DatabasePath from config unless overridden by command line option.
	if opts.DatabasePath != "" {
		settings.DatabasePath = opts.DatabasePath
	}

	repository, err := repo.NewSQLiteRepository(ctx, settings.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	svc, err := aquarium.NewService(repository)
	if err != nil {
		_ = repository.Close()

		return nil, fmt.Errorf("initialise service: %w", err)
	}

	return &application{
		settings: settings,
		repo:     repository,
		service:  svc,
	}, nil
}

// commandContext names the command logger and applies the verbosity flag.
// It must run after setup has installed the configured global logger.
func commandContext(ctx context.Context, opts *Options, name string) context.Context {
	ctx = logger.WithName(ctx, name)

	if opts.Verbose {
		ctx = logger.WithMinLevel(ctx, zapcore.DebugLevel)
	}

	return ctx
}

// close releases the database.
func (a *application) close(ctx context.Context) {
	if err := a.repo.Close(); err != nil {
		logger.ErrorKV(ctx, "Failed to close database", "error", err)
	}
}

// runPass executes one simulation pass by name.
func (a *application) runPass(ctx context.Context, pass string) (*aquarium.PassReport, error) {
	switch pass {
	case PassStats:
		return a.service.UpdateStats(ctx)
	case PassAges:
		return a.service.UpdateAges(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPass, pass)
	}
}

// simulationTasks returns the periodic stats and aging jobs.
func (a *application) simulationTasks() []scheduler.Task {
	return []scheduler.Task{
		{
			Name:     PassStats,
			Interval: a.settings.StatsInterval,
			Run: func(ctx context.Context) error {
				_, err := a.runPass(ctx, PassStats)

				return err
			},
		},
		{
			Name:     PassAges,
			Interval: a.settings.AgingInterval,
			Run: func(ctx context.Context) error {
				_, err := a.runPass(ctx, PassAges)

				return err
			},
		},
	}
}

// Tick runs a single simulation pass against the configured database and returns its report.
func Tick(ctx context.Context, opts *Options, pass string) (*aquarium.PassReport, error) {
	if pass != PassStats && pass != PassAges {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPass, pass)
	}

	app, err := setup(ctx, opts)
	if err != nil {
		return nil, err
	}

	ctx = commandContext(ctx, opts, "aquarium-tick")

	defer app.close(ctx)

	report, err := app.runPass(ctx, pass)
	if err != nil {
		return report, fmt.Errorf("run %s pass: %w", pass, err)
	}

	logger.InfoKV(ctx, "Simulation pass completed",
		"pass", pass,
		"processed", report.Processed,
		"removed_fish", report.RemovedFish)

	return report, nil
}
