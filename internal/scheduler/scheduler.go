package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/oshokin/aquarium/internal/logger"
)

// Task is a named job run every Interval.
type Task struct {
	// Name identifies the task in logs.
	Name string
	// Interval is the period between two runs. The first run happens one
	// interval after Start.
	Interval time.Duration
	// Run does the work. Stop does not interrupt a run in progress.
	Run func(ctx context.Context) error
}

// Scheduler owns a set of recurring tasks.
type Scheduler struct {
	// tasks are the jobs started by Start.
	tasks []Task
	// cancel stops the running task loops.
	cancel context.CancelFunc
	// wg tracks the task goroutines.
	wg sync.WaitGroup
	// mu protects cancel.
	mu sync.Mutex
}

var (
	// errInvalidInterval is returned for tasks with a non-positive interval.
	errInvalidInterval = errors.New("task interval must be positive")
	// errNoRunFunc is returned for tasks without a Run function.
	errNoRunFunc = errors.New("task run function is required")
	// errAlreadyStarted is returned when Start is called twice.
	errAlreadyStarted = errors.New("scheduler already started")
)

// New validates the tasks and returns a stopped scheduler.
func New(tasks ...Task) (*Scheduler, error) {
	for _, task := range tasks {
		if task.Interval <= 0 {
			return nil, fmt.Errorf("%s: %w", task.Name, errInvalidInterval)
		}

		if task.Run == nil {
			return nil, fmt.Errorf("%s: %w", task.Name, errNoRunFunc)
		}
	}

	return &Scheduler{
		tasks: tasks,
	}, nil
}

// Start launches every task. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errAlreadyStarted
	}

	ctx, s.cancel = context.WithCancel(ctx)

	for _, task := range s.tasks {
		s.wg.Go(func() {
			s.loop(logger.WithKV(ctx, "task", task.Name), task)
		})
	}

	logger.InfoKV(ctx, "Scheduler started", "tasks", len(s.tasks))

	return nil
}

// Stop cancels every task and waits for running ones to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	s.wg.Wait()
}

// loop runs task on every tick until ctx is canceled.
func (s *Scheduler) loop(ctx context.Context, task Task) {
	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "Task stopped")

			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}

			runOnce(ctx, task)
		}
	}
}

// runOnce executes a single run, recovering from panics so the loop survives.
func runOnce(ctx context.Context, task Task) {
	ctx = logger.WithKV(ctx, "run_id", xid.New().String())
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorKV(ctx, "Task panicked", "panic", r)
		}
	}()

	if err := task.Run(context.WithoutCancel(ctx)); err != nil {
		logger.ErrorKV(ctx, "Task failed", "error", err, "duration", time.Since(started))

		return
	}

	logger.DebugKV(ctx, "Task finished", "duration", time.Since(started))
}
