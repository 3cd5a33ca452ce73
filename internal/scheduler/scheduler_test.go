package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

var errTestTask = errors.New("test task error")

// TestNew_Validation verifies tasks without interval or run function are rejected.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	_, err := New(Task{Name: "zero", Interval: 0, Run: noop})
	require.ErrorIs(t, err, errInvalidInterval)

	_, err = New(Task{Name: "nil", Interval: time.Second})
	require.ErrorIs(t, err, errNoRunFunc)

	s, err := New(Task{Name: "ok", Interval: time.Second, Run: noop})
	require.NoError(t, err)
	require.NotNil(t, s)
}

// TestScheduler_RunsAtFixedRate verifies each task runs once per interval, starting after one interval.
func TestScheduler_RunsAtFixedRate(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var stats, aging atomic.Int32

		s, err := New(
			Task{
				Name:     "stats",
				Interval: time.Minute,
				Run: func(context.Context) error {
					stats.Add(1)

					return nil
				},
			},
			Task{
				Name:     "aging",
				Interval: 24 * time.Hour,
				Run: func(context.Context) error {
					aging.Add(1)

					return nil
				},
			},
		)
		require.NoError(t, err)
		require.NoError(t, s.Start(t.Context()))

		synctest.Wait()
		require.Zero(t, stats.Load())

		time.Sleep(3*time.Minute + time.Second)
		synctest.Wait()
		require.Equal(t, int32(3), stats.Load())
		require.Zero(t, aging.Load())

		time.Sleep(24 * time.Hour)
		synctest.Wait()
		require.Equal(t, int32(1), aging.Load())
		require.Equal(t, int32(3+24*60), stats.Load())

		s.Stop()
	})
}

// TestScheduler_SurvivesErrorsAndPanics verifies failing runs do not stop the schedule.
func TestScheduler_SurvivesErrorsAndPanics(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32

		s, err := New(Task{
			Name:     "flaky",
			Interval: time.Second,
			Run: func(context.Context) error {
				switch calls.Add(1) {
				case 1:
					return errTestTask
				case 2:
					panic("boom")
				default:
					return nil
				}
			},
		})
		require.NoError(t, err)
		require.NoError(t, s.Start(t.Context()))

		time.Sleep(3*time.Second + time.Millisecond)
		synctest.Wait()
		require.Equal(t, int32(3), calls.Load())

		s.Stop()
	})
}

// TestScheduler_StopWaitsForRunningTask verifies Stop returns only after the current run finishes.
func TestScheduler_StopWaitsForRunningTask(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var finished atomic.Bool

		s, err := New(Task{
			Name:     "slow",
			Interval: time.Second,
			Run: func(context.Context) error {
				time.Sleep(10 * time.Second)
				finished.Store(true)

				return nil
			},
		})
		require.NoError(t, err)
		require.NoError(t, s.Start(t.Context()))
		require.ErrorIs(t, s.Start(t.Context()), errAlreadyStarted)

		time.Sleep(2 * time.Second)
		s.Stop()
		require.True(t, finished.Load())

		// Stopping twice is harmless.
		s.Stop()
	})
}
