package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/aquarium/internal/api/grpc/health"
	"github.com/oshokin/aquarium/internal/config"
	"github.com/oshokin/aquarium/internal/logger"
)

// Options configures the probe.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// Address overrides grpc_address from config when specified.
	Address string
	// Wait keeps retrying until the server is SERVING or Wait elapses.
	// Zero means a single attempt.
	Wait time.Duration
}

// retryInterval defines the delay between two probe attempts.
const retryInterval = time.Second

var (
	// ErrNoHealthAddress is returned when neither the flag nor the config names an endpoint.
	ErrNoHealthAddress = errors.New("no health endpoint address configured")
	// ErrNotServing is returned when the server answers with a status other than SERVING.
	ErrNotServing = errors.New("aquarium server is not serving")
)

// Run checks the health endpoint, retrying for up to opts.Wait.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "aquarium-probe")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Use address from options if provided, otherwise use config.
	address := cfg.GRPCAddress
	if opts.Address != "" {
		address = opts.Address
	}

	if address == "" {
		return ErrNoHealthAddress
	}

	client, err := health.Dial(ctx, address, health.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if opts.Wait > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Wait)
		defer cancel()
	}

	// attempt checks once and reports whether the server is serving.
	attempt := func() error {
		status, err := client.Check(ctx, health.ServiceName)
		if err != nil {
			return err
		}

		if status != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("%w: %s", ErrNotServing, status)
		}

		logger.InfoKV(ctx, "Aquarium server is serving", "address", address)

		return nil
	}

	err = attempt()
	if err == nil || opts.Wait <= 0 {
		return err
	}

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	// Retry loop until success or deadline.
	for {
		logger.DebugKV(ctx, "Probe failed, retrying", "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for server: %w", err)
		case <-ticker.C:
			if err = attempt(); err == nil {
				return nil
			}
		}
	}
}
