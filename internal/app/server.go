package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/scheduler"
)

// maxBodyBytes caps the size of a schedule request body.
const maxBodyBytes = 16 << 20

type scheduleRequest struct {
	Tasks []scheduler.Task `json:"tasks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP API:
//
//	POST /api/v1/projects/{projectId}/schedule
//	GET  /health
//
// Every request is bounded by Config.RequestTimeout.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/projects/{projectId}/schedule", a.handleSchedule)
	mux.HandleFunc("GET /health", a.healthHandler)
	return http.TimeoutHandler(mux, a.config.RequestTimeout, "request timed out")
}

func (a *App) handleSchedule(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	ctx := ctxlog.With(ctxlog.WithLogger(r.Context(), a.logger), "project_id", projectID)
	logger := ctxlog.FromContext(ctx)

	if _, err := strconv.ParseInt(projectID, 10, 64); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid project id %q", projectID)})
		return
	}

	var req scheduleRequest
	if err := decodeStrict(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		logger.Debug("Rejected malformed request body.", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := a.checkLimit(len(req.Tasks)); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		return
	}

	res := a.schedule(ctx, req.Tasks)
	writeJSON(w, statusFor(res), res)
	a.publishAsync(projectID, res)
}

// decodeStrict decodes exactly one JSON value from r. Unknown fields and
// trailing data are errors, matching the JSON task file loader.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

// statusFor maps a result onto the HTTP status the API reports.
func statusFor(res scheduler.Result) int {
	err := res.Err()
	switch {
	case err == nil:
		return http.StatusOK
	case scheduler.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve runs the HTTP API on Config.Addr until ctx is cancelled, then shuts
// down gracefully and waits for background publishes.
func (a *App) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.FromContext(ctx)
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 API server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("🏁 Shutting down API server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown failed: %w", err)
	}
	a.inflight.Wait()
	logger.Debug("API server shut down gracefully.")
	return nil
}
