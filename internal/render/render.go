package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/taskorder/internal/hcl"
	"github.com/vk/taskorder/internal/scheduler"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported format in help-text order.
var Formats = []Format{FormatText, FormatJSON, FormatHCL}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q: must be one of text, json, hcl", s)
}

// Write renders res for tasks into w using format.
func Write(w io.Writer, format Format, tasks []scheduler.Task, res scheduler.Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, tasks, res)
	case FormatJSON:
		return writeJSON(w, res)
	case FormatHCL:
		return hcl.WritePlan(w, tasks, res)
	default:
		return fmt.Errorf("unknown output format %q", string(format))
	}
}
