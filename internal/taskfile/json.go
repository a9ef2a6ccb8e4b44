package taskfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
)

// JSONLoader loads .json task files.
type JSONLoader struct{}

// NewJSONLoader creates a new JSON task loader.
func NewJSONLoader() *JSONLoader { return &JSONLoader{} }

// Extensions implements config.Loader.
func (l *JSONLoader) Extensions() []string { return []string{".json"} }

// Load implements config.Loader.
func (l *JSONLoader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	model := config.NewModel()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("taskfile: read %s: %w", file, err)
		}
		fileModel, err := ParseJSON(data, file)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}
	ctxlog.FromContext(ctx).Debug("JSON loading complete.", "files", len(files), "tasks", model.Len())
	return model, nil
}

// ParseJSON decodes a JSON task document. file is used in diagnostics.
func ParseJSON(data []byte, file string) (*config.Model, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("taskfile: %s: payload is empty", file)
	}

	var entries []entry
	if trimmed[0] == '[' {
		if err := strictUnmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("taskfile: decode %s: %w", file, err)
		}
	} else {
		var doc document
		if err := strictUnmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("taskfile: decode %s: %w", file, err)
		}
		entries = doc.Tasks
	}
	return toModel(file, entries), nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
