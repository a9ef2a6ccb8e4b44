// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two execution modes: scheduling a task
// file once, or serving the scheduling HTTP API. It is decoupled from any
// specific entrypoint like a CLI.
package app
