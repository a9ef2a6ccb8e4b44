package taskfile

import "github.com/vk/taskorder/internal/config"

type document struct {
	Tasks []entry `json:"tasks" yaml:"tasks"`
}

type entry struct {
	Title          string   `json:"title" yaml:"title"`
	EstimatedHours float64  `json:"estimatedHours" yaml:"estimatedHours"`
	DueDate        string   `json:"dueDate" yaml:"dueDate"`
	Dependencies   []string `json:"dependencies" yaml:"dependencies"`
}

func toModel(file string, entries []entry) *config.Model {
	model := config.NewModel()
	for _, e := range entries {
		model.Tasks = append(model.Tasks, &config.Task{
			Title:          e.Title,
			EstimatedHours: e.EstimatedHours,
			DueDate:        e.DueDate,
			DependsOn:      e.Dependencies,
			Source:         file,
		})
	}
	return model
}
