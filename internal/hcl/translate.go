package hcl

import (
	"context"
	"fmt"

	"github.com/vk/taskorder/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// translateTask converts the HCL-specific task block into the agnostic model.
func (l *Loader) translateTask(ctx context.Context, file string, b *taskBlock) (*config.Task, error) {
	t := &config.Task{
		Title:     b.Title,
		DependsOn: append([]string(nil), b.DependsOn...),
		Source:    file,
	}

	if err := decodeExpr(ctx, b.EstimatedHours, "estimated_hours", cty.Number, &t.EstimatedHours); err != nil {
		return nil, fmt.Errorf("task %q in %s: %w", b.Title, file, err)
	}
	if err := decodeExpr(ctx, b.DueDate, "due_date", cty.String, &t.DueDate); err != nil {
		return nil, fmt.Errorf("task %q in %s: %w", b.Title, file, err)
	}

	return t, nil
}
