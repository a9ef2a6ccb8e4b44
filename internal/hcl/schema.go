package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks this loader cares about.
type fileRoot struct {
	Tasks  []*taskBlock `hcl:"task,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// taskBlock is a `task "<title>" { ... }` block.
//
// Scalar attributes are kept as expressions and converted through cty, which
// lets `estimated_hours = "1.5"` or `due_date = null` decode sensibly.
type taskBlock struct {
	Title          string         `hcl:"title,label"`
	EstimatedHours hcl.Expression `hcl:"estimated_hours,optional"`
	DueDate        hcl.Expression `hcl:"due_date,optional"`
	DependsOn      []string       `hcl:"depends_on,optional"`
}
