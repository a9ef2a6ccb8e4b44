package hcl

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/taskorder/internal/scheduler"
	"github.com/zclconf/go-cty/cty"
)

// WritePlan renders a schedule as an HCL document.
//
// The document starts with the outcome attributes (recommended_order,
// has_cycle and, on failure, error_message and cycle) followed by one task
// block per input task. On success the blocks follow the recommended order;
// otherwise they keep the input order. The output is itself a valid task file.
// Non-finite estimated hours have no HCL literal and are rejected before
// anything is written.
func WritePlan(w io.Writer, tasks []scheduler.Task, res scheduler.Result) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("recommended_order", stringList(res.Order))
	body.SetAttributeValue("has_cycle", cty.BoolVal(res.HasCycle))
	if res.ErrorMessage != "" {
		body.SetAttributeValue("error_message", cty.StringVal(res.ErrorMessage))
	}
	if len(res.Cycle) > 0 {
		body.SetAttributeValue("cycle", stringList(res.Cycle))
	}

	for _, t := range orderedTasks(tasks, res) {
		if math.IsNaN(t.EstimatedHours) || math.IsInf(t.EstimatedHours, 0) {
			return fmt.Errorf("task %q: estimated hours %v cannot be written as HCL", t.Title, t.EstimatedHours)
		}
		body.AppendNewline()
		block := body.AppendNewBlock("task", []string{t.Title})
		tb := block.Body()
		tb.SetAttributeValue("estimated_hours", cty.NumberFloatVal(t.EstimatedHours))
		if t.DueDate != "" {
			tb.SetAttributeValue("due_date", cty.StringVal(t.DueDate))
		}
		if len(t.Dependencies) > 0 {
			tb.SetAttributeValue("depends_on", stringList(t.Dependencies))
		}
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("write HCL plan: %w", err)
	}
	return nil
}

// orderedTasks returns tasks sorted by their position in res.Order when the
// schedule succeeded, and unchanged otherwise.
func orderedTasks(tasks []scheduler.Task, res scheduler.Result) []scheduler.Task {
	if !res.OK() || len(res.Order) != len(tasks) {
		return tasks
	}
	byTitle := make(map[string]scheduler.Task, len(tasks))
	for _, t := range tasks {
		byTitle[t.Title] = t
	}
	out := make([]scheduler.Task, 0, len(tasks))
	for _, title := range res.Order {
		out = append(out, byTitle[title])
	}
	return out
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
