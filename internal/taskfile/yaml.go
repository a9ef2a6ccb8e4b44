package taskfile

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader loads .yaml and .yml task files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML task loader.
func NewYAMLLoader() *YAMLLoader { return &YAMLLoader{} }

// Extensions implements config.Loader.
func (l *YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

// Load implements config.Loader.
func (l *YAMLLoader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	model := config.NewModel()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("taskfile: read %s: %w", file, err)
		}
		fileModel, err := ParseYAML(data, file)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}
	ctxlog.FromContext(ctx).Debug("YAML loading complete.", "files", len(files), "tasks", model.Len())
	return model, nil
}

// ParseYAML decodes a YAML task document. file is used in diagnostics.
func ParseYAML(data []byte, file string) (*config.Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("taskfile: %s: payload is empty", file)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("taskfile: decode %s: %w", file, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("taskfile: %s: expected a YAML document", file)
	}

	var entries []entry
	switch top := root.Content[0]; top.Kind {
	case yaml.SequenceNode:
		if err := top.Decode(&entries); err != nil {
			return nil, fmt.Errorf("taskfile: decode %s: %w", file, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, fmt.Errorf("taskfile: decode %s: %w", file, err)
		}
		entries = doc.Tasks
	default:
		return nil, fmt.Errorf("taskfile: %s: expected a task list or a mapping with a tasks key", file)
	}
	return toModel(file, entries), nil
}
