package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/notify"
	"github.com/vk/taskorder/internal/scheduler"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loaders   []config.Loader
	engine    scheduler.Scheduler
	publisher *notify.Publisher

	healthServer *http.Server
	inflight     sync.WaitGroup // background publishes
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. When no loaders are given, DefaultLoaders is used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = DefaultLoaders()
	}

	var opts []scheduler.Option
	if cfg.Strict {
		opts = append(opts, scheduler.WithDanglingPolicy(scheduler.DanglingReject))
	}

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		engine:  scheduler.New(opts...),
	}

	if cfg.NotifyURL != "" {
		p, err := notify.New(notify.Config{
			URL:                cfg.NotifyURL,
			Namespace:          cfg.NotifyNamespace,
			Event:              cfg.NotifyEvent,
			AckEvent:           cfg.NotifyAck,
			Timeout:            cfg.NotifyTimeout,
			InsecureSkipVerify: cfg.NotifyInsecure,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to configure publisher: %w", err)
		}
		a.publisher = p
		logger.Debug("Publisher configured.", "url", cfg.NotifyURL, "namespace", cfg.NotifyNamespace, "event", cfg.NotifyEvent)
	}

	logger.Debug("App initialized.", "loaders", len(loaders), "strict", cfg.Strict, "max_tasks", cfg.MaxTasks)
	return a, nil
}
