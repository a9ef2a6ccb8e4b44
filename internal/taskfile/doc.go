// Package taskfile implements config.Loader for JSON and YAML task files.
//
// Both formats accept either a document with a top-level "tasks" list or a
// bare list of tasks. Task keys match the HTTP API: title, estimatedHours,
// dueDate and dependencies.
package taskfile
