// study.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Task struct to match the YAML structure. Optimal values and error
// opportunities are authored per task so efficiency and error-rate
// observations can be validated against the study design.
type Task struct {
	ID                 string         `yaml:"id"`
	Title              string         `yaml:"title"`
	Description        string         `yaml:"description"`
	Kind               AssessmentKind `yaml:"kind"`
	Required           bool           `yaml:"required"`
	OptimalSteps       int            `yaml:"optimal_steps,omitempty"`
	OptimalTimeSeconds float64        `yaml:"optimal_time_seconds,omitempty"`
	Opportunities      int            `yaml:"opportunities,omitempty"`
}

// Study struct to hold the full study definition
type Study struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tasks       []Task `yaml:"tasks"`
}

// LoadStudy reads and parses the study definition YAML file
func LoadStudy(path string) (*Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study file: %w", err)
	}

	var study Study
	err = yaml.Unmarshal(data, &study)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal study YAML: %w", err)
	}

	return &study, nil
}

// TaskByID returns the task with the given id, if it exists.
func (s *Study) TaskByID(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// TaskIDs returns the ids of all tasks in definition order.
func (s *Study) TaskIDs() []string {
	ids := make([]string, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
