package app

import (
	"fmt"

	"github.com/vk/varforge/internal/config"
	"github.com/vk/varforge/internal/vars"
)

// buildDefinitions translates the model's variables into engine definitions,
// validating each value's static configuration.
func buildDefinitions(model *config.Model) ([]*vars.Definition, error) {
	defs := make([]*vars.Definition, 0, len(model.Variables))
	for _, variable := range model.Variables {
		value, err := buildValue(variable)
		if err != nil {
			return nil, err
		}
		if err := value.Validate(); err != nil {
			return nil, fmt.Errorf("invalid variable %q: %w", variable.Name, err)
		}
		def := vars.NewDefinition(variable.Name, value)
		def.ConditionID = variable.ConditionID
		def.CheckOnce = variable.CheckOnce
		def.AutoUnset = variable.AutoUnset
		defs = append(defs, def)
	}
	return defs, nil
}

// buildValue picks the value variant a config variable describes.
func buildValue(variable *config.Variable) (vars.Value, error) {
	switch {
	case variable.Value != nil:
		return &vars.PlainValue{Raw: *variable.Value}, nil
	case variable.Environment != nil:
		return &vars.EnvironmentValue{Name: *variable.Environment}, nil
	default:
		return nil, fmt.Errorf("variable %q has no value source", variable.Name)
	}
}
