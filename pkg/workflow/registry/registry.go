// Package registry holds the step-type catalog: which step types exist
// and the JSON schema each one's metadata payload must satisfy.
package registry

import (
	"fmt"
	"strings"

	"github.com/flockhq/flock/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// StepDefinition describes one step type for editors and validation.
type StepDefinition struct {
	Type        models.StepType `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      map[string]any  `json:"schema"`
}

// Registry maps step types to their definitions.
type Registry struct {
	definitions map[models.StepType]*StepDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[models.StepType]*StepDefinition)}
}

// Register adds or replaces a step definition.
func (r *Registry) Register(def *StepDefinition) {
	r.definitions[def.Type] = def
}

// Get returns the definition for a step type.
func (r *Registry) Get(stepType models.StepType) (*StepDefinition, bool) {
	def, ok := r.definitions[stepType]

	return def, ok
}

// Definitions returns every registered definition keyed by type.
func (r *Registry) Definitions() map[models.StepType]*StepDefinition {
	return r.definitions
}

// ValidateStep checks a step's metadata against its type's schema.
func (r *Registry) ValidateStep(step *models.WorkflowStep) error {
	def, ok := r.definitions[step.Type]
	if !ok {
		return fmt.Errorf("step type '%s' not registered", step.Type)
	}

	metadata := step.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	schemaLoader := gojsonschema.NewGoLoader(def.Schema)
	dataLoader := gojsonschema.NewGoLoader(metadata)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("failed to validate step metadata: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultError := range result.Errors() {
			details = append(details, resultError.String())
		}

		return fmt.Errorf("invalid metadata for step type '%s': %s", step.Type, strings.Join(details, "; "))
	}

	return nil
}
