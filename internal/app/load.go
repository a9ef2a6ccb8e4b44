package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/fsutil"
	"github.com/vk/taskorder/internal/scheduler"
)

// ErrTooManyTasks is returned when a task set exceeds Config.MaxTasks.
var ErrTooManyTasks = errors.New("too many tasks")

// LoadTasks reads every supported task file at path (a file or a directory)
// in lexical path order and returns the merged task list.
func (a *App) LoadTasks(ctx context.Context, path string) ([]scheduler.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading tasks...", "path", path)

	var extensions []string
	for _, l := range a.loaders {
		extensions = append(extensions, l.Extensions()...)
	}

	files, err := fsutil.FindFilesByExtension(path, extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find task files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no task files found in %s", path)
	}

	model := config.NewModel()
	for _, file := range files {
		loader := a.loaderFor(file)
		if loader == nil {
			return nil, fmt.Errorf("no loader for %s", file)
		}
		fileModel, err := loader.Load(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to load tasks: %w", err)
		}
		model.Merge(fileModel)
	}
	logger.Info("Tasks loaded.", "files", len(files), "task_count", model.Len())
	warnDuplicateTitles(logger, model)

	return toTasks(model), nil
}

func (a *App) loaderFor(file string) config.Loader {
	ext := filepath.Ext(file)
	for _, l := range a.loaders {
		if config.SupportsExtension(l, ext) {
			return l
		}
	}
	return nil
}

func (a *App) checkLimit(n int) error {
	if n > a.config.MaxTasks {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyTasks, n, a.config.MaxTasks)
	}
	return nil
}

// warnDuplicateTitles names the files behind every repeated title. The
// scheduler rejects the set; the log says where to look.
func warnDuplicateTitles(logger *slog.Logger, m *config.Model) {
	firstSource := make(map[string]string, m.Len())
	for _, t := range m.Tasks {
		if first, seen := firstSource[t.Title]; seen {
			logger.Warn("Duplicate task title.", "title", t.Title, "first_source", first, "duplicate_source", t.Source)
			continue
		}
		firstSource[t.Title] = t.Source
	}
}

func toTasks(m *config.Model) []scheduler.Task {
	tasks := make([]scheduler.Task, 0, m.Len())
	for _, t := range m.Tasks {
		tasks = append(tasks, scheduler.Task{
			Title:          t.Title,
			EstimatedHours: t.EstimatedHours,
			DueDate:        t.DueDate,
			Dependencies:   t.DependsOn,
		})
	}
	return tasks
}
