package app

import (
	"context"
	"fmt"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/render"
)

// Run executes the main application logic based on the configuration: it
// serves the HTTP API when Serve is set and schedules TasksPath otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.logger.Debug("App.Run method finished.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx, a.config.HealthcheckPort); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	if a.config.Serve {
		return a.Serve(ctx)
	}
	return a.ScheduleFile(ctx)
}

// ScheduleFile loads the configured task files, schedules them and renders
// the result. A scheduling failure is returned as a wrapped *scheduler.Error
// after the result has been rendered.
func (a *App) ScheduleFile(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	path := a.config.TasksPath

	tasks, err := a.LoadTasks(ctx, path)
	if err != nil {
		return err
	}
	if err := a.checkLimit(len(tasks)); err != nil {
		return err
	}

	res := a.schedule(ctx, tasks)
	if err := render.Write(a.outW, a.config.Format, tasks, res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	a.publish(ctx, a.config.ProjectID, res)

	if err := res.Err(); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", path, err)
	}
	return nil
}
