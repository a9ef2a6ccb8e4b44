// Package notify publishes scheduling results to a socket.io endpoint so that
// dashboards can follow schedules as they are computed. Publishing is
// best-effort: callers log failures and carry on.
package notify
