// Package poll runs periodic background tasks. Unlike an implicit
// effect-cleanup hook, every scheduled task hands back an explicit handle
// that must be cancelled on teardown.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is the cancellable handle for one scheduled task.
type Task struct {
	name   string
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

// Name returns the task name used in logs.
func (t *Task) Name() string {
	return t.name
}

// Cancel stops the task's ticker and waits for the running iteration, if
// any, to finish. Safe to call more than once.
func (t *Task) Cancel() {
	t.once.Do(t.cancel)
	<-t.done
}

// Runner owns a set of scheduled tasks and stops them together on shutdown.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	tasks map[*Task]struct{}
}

func NewRunner() *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[*Task]struct{}),
	}
}

// Schedule starts fn on the given interval, running it once immediately, and
// returns the task handle. The fn context is cancelled when the task or the
// whole runner is stopped.
func (r *Runner) Schedule(name string, interval time.Duration, fn func(ctx context.Context) error) *Task {
	ctx, cancel := context.WithCancel(r.ctx)
	task := &Task{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	r.tasks[task] = struct{}{}
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run(ctx, task, interval, fn)

	slog.Info("Task scheduled", "name", name, "interval", interval)
	return task
}

// Active returns the number of tasks still running.
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Stop cancels every task and waits for them to finish.
func (r *Runner) Stop() {
	slog.Info("Stopping task runner...")
	r.cancel()
	r.wg.Wait()
	slog.Info("Task runner stopped")
}

func (r *Runner) run(ctx context.Context, task *Task, interval time.Duration, fn func(ctx context.Context) error) {
	defer func() {
		r.mu.Lock()
		delete(r.tasks, task)
		r.mu.Unlock()
		close(task.done)
		r.wg.Done()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run immediately on start
	r.execute(ctx, task, fn)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Task stopping", "name", task.name)
			return
		case <-ticker.C:
			r.execute(ctx, task, fn)
		}
	}
}

func (r *Runner) execute(ctx context.Context, task *Task, fn func(ctx context.Context) error) {
	start := time.Now()
	if err := fn(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("Task failed", "name", task.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Task completed", "name", task.name, "duration", time.Since(start))
}
