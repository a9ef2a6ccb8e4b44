package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/taskorder/internal/app"
	"github.com/vk/taskorder/internal/notify"
	"github.com/vk/taskorder/internal/render"
	"github.com/vk/taskorder/internal/scheduler"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitRejected = 3 // cycle or invalid task set
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error returned by the application onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, app.ErrTooManyTasks) || scheduler.IsValidation(err) {
		return ExitRejected
	}
	return ExitInternal
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("taskorder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
taskorder - A dependency-aware task scheduler.

Usage:
  taskorder [options] TASKS_PATH
  taskorder -serve [options]

Arguments:
  TASKS_PATH
    Path to a task file (.hcl, .json, .yaml, .yml) or a directory of them.

Exit codes:
  0 scheduled, 1 internal failure, 2 usage error, 3 cycle or invalid tasks.

Options:
`)
		flagSet.PrintDefaults()
	}

	tasksFlag := flagSet.String("tasks", "", "Path to the task file or directory.")
	tFlag := flagSet.String("t", "", "Path to the task file or directory (shorthand).")
	projectFlag := flagSet.String("project", "", "Project id reported to the notify endpoint.")
	formatFlag := flagSet.String("format", string(render.FormatText), "Output format. Options: 'text', 'json' or 'hcl'.")
	strictFlag := flagSet.Bool("strict", false, "Reject dependencies on unknown tasks instead of ignoring them.")
	maxTasksFlag := flagSet.Int("max-tasks", app.DefaultMaxTasks, "Maximum number of tasks accepted in one schedule.")
	serveFlag := flagSet.Bool("serve", false, "Serve the scheduling HTTP API instead of scheduling a file.")
	addrFlag := flagSet.String("addr", app.DefaultAddr, "Listen address for the HTTP API.")
	requestTimeoutFlag := flagSet.Duration("request-timeout", app.DefaultRequestTimeout, "Per-request timeout for the HTTP API.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	notifyURLFlag := flagSet.String("notify-url", "", "socket.io endpoint to publish results to. Empty is disabled.")
	notifyNamespaceFlag := flagSet.String("notify-namespace", "/", "socket.io namespace to publish in.")
	notifyInsecureFlag := flagSet.Bool("notify-insecure", false, "Skip TLS certificate verification for the notify endpoint.")
	notifyEventFlag := flagSet.String("notify-event", app.DefaultNotifyEvent, "Event name results are published under.")
	notifyAckFlag := flagSet.String("notify-ack", "", "Event to wait for after publishing. Defaults to '<notify-event>_ack'; '-' disables waiting.")
	notifyTimeoutFlag := flagSet.Duration("notify-timeout", notify.DefaultTimeout, "Timeout for one publish.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *tasksFlag != "" {
		path = *tasksFlag
	} else if *tFlag != "" {
		path = *tFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Tasks path determined.", "path", path)

	if path == "" && !*serveFlag {
		slog.Debug("No tasks path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := render.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid format: must be 'text', 'json' or 'hcl'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxTasksFlag <= 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid max-tasks: must be positive"}
	}
	if *requestTimeoutFlag <= 0 || *notifyTimeoutFlag <= 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid timeout: must be positive"}
	}

	ackEvent := *notifyAckFlag
	switch ackEvent {
	case "":
		ackEvent = *notifyEventFlag + "_ack"
	case "-":
		ackEvent = ""
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TasksPath:       path,
		ProjectID:       *projectFlag,
		Format:          format,
		Strict:          *strictFlag,
		MaxTasks:        *maxTasksFlag,
		Serve:           *serveFlag,
		Addr:            *addrFlag,
		RequestTimeout:  *requestTimeoutFlag,
		NotifyURL:       *notifyURLFlag,
		NotifyNamespace: *notifyNamespaceFlag,
		NotifyInsecure:  *notifyInsecureFlag,
		NotifyEvent:     *notifyEventFlag,
		NotifyAck:       ackEvent,
		NotifyTimeout:   *notifyTimeoutFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
