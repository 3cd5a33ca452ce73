package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"

	httpapi "github.com/oshokin/aquarium/internal/api/http/aquarium"
	"github.com/oshokin/aquarium/internal/api/grpc/health"
	"github.com/oshokin/aquarium/internal/logger"
	"github.com/oshokin/aquarium/internal/scheduler"
	"github.com/oshokin/aquarium/internal/version"
)

// Options controls the aquarium-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// EnvFile is an optional dotenv file exported before the environment is read.
	EnvFile string
	// ListenAddress provides an optional listen address override for the REST API.
	ListenAddress string
	// DatabasePath overrides the SQLite database file from the configuration.
	DatabasePath string
	// Verbose enables debug logs for the command regardless of log_level.
	Verbose bool
}

// healthCheckInterval is the period of the database probe behind the gRPC health status.
const healthCheckInterval = 10 * time.Second

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the REST API, the optional gRPC health endpoint and the
// simulation scheduler, and blocks until the context is canceled or the
// REST server stops.
func Run(ctx context.Context, opts *Options) error {
	app, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	ctx = commandContext(ctx, opts, "aquarium-server")

	defer app.close(ctx)

	// Determine listen address: CLI argument overrides config.
	listenAddress, err := resolveListenAddress(app.settings.HTTPAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Cancel on return so the shutdown goroutine also runs when Serve fails.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	tasks := app.simulationTasks()

	grpcServer, healthServer, err := app.startHealthServer(ctx, &lc)
	if err != nil {
		_ = lis.Close()

		return err
	}

	if healthServer != nil {
		tasks = append(tasks, scheduler.Task{
			Name:     "health",
			Interval: healthCheckInterval,
			Run:      healthServer.Refresh,
		})
	}

	sched, err := scheduler.New(tasks...)
	if err != nil {
		_ = lis.Close()

		return fmt.Errorf("create scheduler: %w", err)
	}

	if err = sched.Start(ctx); err != nil {
		_ = lis.Close()

		return fmt.Errorf("start scheduler: %w", err)
	}

	httpServer := &http.Server{
		Handler:           httpapi.NewHandler(ctx, app.service),
		ReadTimeout:       app.settings.Timeout,
		ReadHeaderTimeout: app.settings.Timeout,
		WriteTimeout:      app.settings.Timeout,
	}

	logger.InfoKV(ctx, "Aquarium server listening",
		"version", version.Short(),
		"listen_address", lis.Addr().String(),
		"grpc_address", app.settings.GRPCAddress,
		"database_path", app.settings.DatabasePath)

	// Done channel is closed after every component stops to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down aquarium server")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), app.settings.Timeout)
		defer cancelShutdown()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorKV(ctx, "HTTP server shutdown failed", "error", err)
		}

		if grpcServer != nil {
			healthServer.Shutdown()
			grpcServer.GracefulStop()
		}

		sched.Stop()
		close(done)
	}()

	serveErr := httpServer.Serve(lis)

	cancel()
	<-done
	logger.Info(ctx, "Aquarium server stopped")

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", serveErr)
	}

	return nil
}

// startHealthServer serves the gRPC health service when an address is configured.
// Both return values are nil when the endpoint is disabled.
func (a *application) startHealthServer(
	ctx context.Context,
	lc *net.ListenConfig,
) (*grpc.Server, *health.Server, error) {
	if a.settings.GRPCAddress == "" {
		return nil, nil, nil
	}

	lis, err := lc.Listen(ctx, "tcp", a.settings.GRPCAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("listen on %s: %w", a.settings.GRPCAddress, err)
	}

	healthServer := health.NewServer(a.repo)
	grpcServer := grpc.NewServer()
	healthServer.Register(grpcServer)

	// A failed probe is logged and reported as NOT_SERVING.
	_ = healthServer.Refresh(ctx)

	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.ErrorKV(ctx, "gRPC server failed", "error", err)
		}
	}()

	logger.InfoKV(ctx, "Health endpoint listening", "grpc_address", lis.Addr().String())

	return grpcServer, healthServer, nil
}

// resolveListenAddress determines the listen address for the REST API.
// If override is provided, uses it directly. Otherwise falls back to configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		if _, _, err := net.SplitHostPort(override); err != nil {
			return "", fmt.Errorf("invalid listen address format %q: %w", override, err)
		}

		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	return configAddr, nil
}
