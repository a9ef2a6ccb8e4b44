package app

import (
	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/hcl"
	"github.com/vk/taskorder/internal/taskfile"
)

// DefaultLoaders returns the loaders for every supported task file format.
func DefaultLoaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		taskfile.NewJSONLoader(),
		taskfile.NewYAMLLoader(),
	}
}
