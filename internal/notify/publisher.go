package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/scheduler"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultTimeout bounds a Publish call when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Config describes where and how results are published.
type Config struct {
	// URL is the socket.io endpoint, e.g. http://localhost:3000/socket.io/.
	URL       string
	Namespace string
	// Event is the event name the result is emitted under.
	Event string
	// AckEvent, when set, is the event the server sends back to confirm
	// receipt. Publish waits for it. When empty, Publish returns as soon as
	// the result has been emitted.
	AckEvent           string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Publisher emits scheduling results over socket.io.
type Publisher struct {
	cfg     Config
	baseURL string
	path    string
}

// New validates cfg and returns a Publisher.
func New(cfg Config) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, errors.New("notify: URL is required")
	}
	if cfg.Event == "" {
		return nil, errors.New("notify: event name is required")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("notify: failed to parse URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("notify: unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("notify: URL %q has no host", cfg.URL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "/"
	}

	return &Publisher{
		cfg:     cfg,
		baseURL: fmt.Sprintf("%s://%s", u.Scheme, u.Host),
		path:    u.Path,
	}, nil
}

// Payload is the message body emitted for a result.
func Payload(projectID string, res scheduler.Result) map[string]any {
	order := res.Order
	if order == nil {
		order = []string{}
	}
	payload := map[string]any{
		"projectId":        projectID,
		"recommendedOrder": order,
		"hasCycle":         res.HasCycle,
	}
	if res.ErrorMessage != "" {
		payload["errorMessage"] = res.ErrorMessage
	}
	if len(res.Cycle) > 0 {
		payload["cycle"] = res.Cycle
	}
	return payload
}

// Publish connects, emits the result and waits for the acknowledgement (if
// configured), all within the configured timeout.
func (p *Publisher) Publish(ctx context.Context, projectID string, res scheduler.Result) error {
	logger := ctxlog.FromContext(ctx).With("component", "notify", "url", p.cfg.URL, "namespace", p.cfg.Namespace, "event", p.cfg.Event)
	logger.Debug("Publish started.")
	defer logger.Debug("Publish finished.")

	var isConnected atomic.Bool
	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	if p.path != "" {
		opts.SetPath(p.path)
	}
	if p.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(p.baseURL, opts)
	io := manager.Socket(p.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	payload := Payload(projectID, res)

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Debug("Connected.", "namespace", p.cfg.Namespace, "sid", io.Id())
		io.Emit(p.cfg.Event, payload)
		if p.cfg.AckEvent == "" {
			finish(nil)
		}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				finish(fmt.Errorf("notify: connection failed: %w", err))
				return
			}
		}
		finish(errors.New("notify: connection failed"))
	})

	if p.cfg.AckEvent != "" {
		io.On(types.EventName(p.cfg.AckEvent), func(...any) {
			finish(nil)
		})
	}

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("notify: timed out after connecting while waiting for event %q", p.cfg.AckEvent)
		}
		return errors.New("notify: timed out while waiting for initial connection")
	case err := <-done:
		if err == nil {
			logger.Info("Schedule published.", "project_id", projectID, "has_cycle", res.HasCycle)
		}
		return err
	}
}
