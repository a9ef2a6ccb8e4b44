package app

import (
	"context"
	"time"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/scheduler"
)

// schedule runs the engine and logs the outcome.
func (a *App) schedule(ctx context.Context, tasks []scheduler.Task) scheduler.Result {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	res := a.engine.Schedule(tasks)
	duration := time.Since(start)

	switch {
	case res.OK():
		logger.Info("Schedule computed.", "task_count", len(tasks), "duration", duration)
		if len(res.Dangling) > 0 {
			logger.Warn("Ignored dependencies on unknown tasks.", "count", len(res.Dangling))
		}
	case res.HasCycle:
		logger.Warn("Schedule rejected: dependency cycle.", "task_count", len(tasks), "cycle", res.Cycle, "has_cycle", true)
	default:
		logger.Error("Schedule failed.", "task_count", len(tasks), "error", res.Err())
	}
	return res
}

// publish sends res to the configured publisher. Failures are logged only.
func (a *App) publish(ctx context.Context, projectID string, res scheduler.Result) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, projectID, res); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to publish schedule.", "project_id", projectID, "error", err)
	}
}

// publishAsync publishes in the background. Serve waits for these on shutdown.
func (a *App) publishAsync(projectID string, res scheduler.Result) {
	if a.publisher == nil {
		return
	}
	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		a.publish(ctxlog.WithLogger(context.Background(), a.logger), projectID, res)
	}()
}
