package probe

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/oshokin/aquarium/internal/api/grpc/health"
)

var errDatabaseDown = errors.New("database is down")

// switchPinger fails until up is set.
type switchPinger struct {
	up atomic.Bool
}

func (p *switchPinger) Ping(context.Context) error {
	if !p.up.Load() {
		return errDatabaseDown
	}

	return nil
}

// startHealth serves a health server on a local port and returns its address.
func startHealth(t *testing.T, s *health.Server) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	s.Register(grpcServer)

	go func() {
		_ = grpcServer.Serve(l)
	}()

	t.Cleanup(grpcServer.Stop)

	return l.Addr().String()
}

// missingConfig returns a config path that does not exist, so defaults apply.
func missingConfig(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "missing.yaml")
}

// TestRun_Serving verifies a healthy server passes the probe.
func TestRun_Serving(t *testing.T) {
	t.Parallel()

	pinger := new(switchPinger)
	pinger.up.Store(true)

	s := health.NewServer(pinger)
	require.NoError(t, s.Refresh(context.Background()))

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Address:    startHealth(t, s),
	})
	require.NoError(t, err)
}

// TestRun_NotServing verifies a single attempt fails fast on NOT_SERVING.
func TestRun_NotServing(t *testing.T) {
	t.Parallel()

	s := health.NewServer(new(switchPinger))

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Address:    startHealth(t, s),
	})
	require.ErrorIs(t, err, ErrNotServing)
}

// TestRun_WaitsForServing verifies the probe retries until the server recovers.
func TestRun_WaitsForServing(t *testing.T) {
	t.Parallel()

	pinger := new(switchPinger)
	s := health.NewServer(pinger)
	address := startHealth(t, s)

	go func() {
		time.Sleep(200 * time.Millisecond)
		pinger.up.Store(true)
		_ = s.Refresh(context.Background())
	}()

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Address:    address,
		Wait:       5 * time.Second,
	})
	require.NoError(t, err)
}

// TestRun_WaitTimesOut verifies the probe gives up once Wait elapses.
func TestRun_WaitTimesOut(t *testing.T) {
	t.Parallel()

	s := health.NewServer(new(switchPinger))

	err := Run(context.Background(), &Options{
		ConfigPath: missingConfig(t),
		Address:    startHealth(t, s),
		Wait:       1500 * time.Millisecond,
	})
	require.ErrorIs(t, err, ErrNotServing)
}

// TestRun_NoAddress verifies the probe refuses to run without an endpoint.
func TestRun_NoAddress(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{ConfigPath: missingConfig(t)})
	require.ErrorIs(t, err, ErrNoHealthAddress)
}
