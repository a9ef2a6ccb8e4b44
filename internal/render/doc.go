// Package render writes scheduling results in the formats the CLI offers:
// a lipgloss-styled text report for terminals, the JSON wire shape of the
// HTTP API, and an HCL plan that can be fed back in as a task file.
package render
