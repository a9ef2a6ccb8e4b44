package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/taskorder/internal/render"
)

const (
	DefaultAddr           = ":8080"
	DefaultMaxTasks       = 10000
	DefaultRequestTimeout = 10 * time.Second
	DefaultNotifyEvent    = "schedule"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TasksPath string // file or directory of task files
	ProjectID string // reported to the publisher in file mode

	Format   render.Format
	Strict   bool // reject dangling dependencies
	MaxTasks int

	Serve          bool
	Addr           string
	RequestTimeout time.Duration

	NotifyURL       string
	NotifyNamespace string
	NotifyEvent     string
	NotifyAck       string
	NotifyTimeout   time.Duration
	NotifyInsecure  bool // skip TLS verification

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if !cfg.Serve && cfg.TasksPath == "" {
		return nil, errors.New("TasksPath is a required configuration field unless serving the API")
	}
	if cfg.MaxTasks < 0 {
		return nil, fmt.Errorf("MaxTasks must not be negative, got %d", cfg.MaxTasks)
	}
	if cfg.MaxTasks == 0 {
		cfg.MaxTasks = DefaultMaxTasks
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("RequestTimeout must not be negative, got %s", cfg.RequestTimeout)
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatText
	}
	if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	if cfg.Serve && cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("HealthcheckPort out of range: %d", cfg.HealthcheckPort)
	}
	if cfg.NotifyURL != "" && cfg.NotifyEvent == "" {
		cfg.NotifyEvent = DefaultNotifyEvent
	}

	return &cfg, nil
}
