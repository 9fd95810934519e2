package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/varforge/internal/config"
)

// rootSchema lists the top-level blocks a definition file may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "variable", LabelNames: []string{"name"}},
		{Type: "condition", LabelNames: []string{"id"}},
	},
}

// variableSchema lists the attributes of a `variable` block.
var variableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value"},
		{Name: "environment"},
		{Name: "condition"},
		{Name: "check_once"},
		{Name: "auto_unset"},
	},
}

// conditionSchema lists the attributes of a `condition` block.
var conditionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "expression", Required: true},
	},
}

// translateFile decodes all blocks of one file body into the model.
func translateFile(body hcl.Body, model *config.Model) error {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return diags
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "variable":
			variable, err := translateVariable(block)
			if err != nil {
				return err
			}
			model.Variables = append(model.Variables, variable)
		case "condition":
			condition, err := translateCondition(block)
			if err != nil {
				return err
			}
			model.Conditions = append(model.Conditions, condition)
		}
	}
	return nil
}

// translateVariable decodes a single `variable` block.
func translateVariable(block *hcl.Block) (*config.Variable, error) {
	name := block.Labels[0]
	if name == "" {
		return nil, fmt.Errorf("variable block at %s has an empty name", block.DefRange)
	}

	content, diags := block.Body.Content(variableSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	variable := &config.Variable{Name: name}
	var err error

	if variable.Value, err = stringAttr(content.Attributes, "value"); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if variable.Environment, err = stringAttr(content.Attributes, "environment"); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if (variable.Value == nil) == (variable.Environment == nil) {
		return nil, fmt.Errorf("variable %q must set exactly one of 'value' and 'environment'", name)
	}

	conditionID, err := stringAttr(content.Attributes, "condition")
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if conditionID != nil {
		variable.ConditionID = *conditionID
	}

	if variable.CheckOnce, err = boolAttr(content.Attributes, "check_once"); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if variable.AutoUnset, err = boolAttr(content.Attributes, "auto_unset"); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	return variable, nil
}

// translateCondition decodes a single `condition` block.
func translateCondition(block *hcl.Block) (*config.Condition, error) {
	id := block.Labels[0]
	if id == "" {
		return nil, fmt.Errorf("condition block at %s has an empty id", block.DefRange)
	}

	content, diags := block.Body.Content(conditionSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	expression, err := stringAttr(content.Attributes, "expression")
	if err != nil {
		return nil, fmt.Errorf("condition %q: %w", id, err)
	}
	if expression == nil {
		return nil, fmt.Errorf("condition %q is missing 'expression'", id)
	}
	return &config.Condition{ID: id, Expression: *expression}, nil
}

// stringAttr statically evaluates an optional attribute to a string.
func stringAttr(attrs hcl.Attributes, name string) (*string, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	value, err := staticValue(attr, cty.String)
	if err != nil {
		return nil, err
	}
	s := value.AsString()
	return &s, nil
}

// boolAttr statically evaluates an optional attribute to a bool, defaulting
// to false when absent.
func boolAttr(attrs hcl.Attributes, name string) (bool, error) {
	attr, ok := attrs[name]
	if !ok {
		return false, nil
	}
	value, err := staticValue(attr, cty.Bool)
	if err != nil {
		return false, err
	}
	return value.True(), nil
}

// staticValue evaluates an attribute without an evaluation context and
// converts it to the wanted type. HCL interpolation is rejected here, which
// is what forces definition files to escape placeholders as $${name}.
func staticValue(attr *hcl.Attribute, want cty.Type) (cty.Value, error) {
	value, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("attribute %q: %w", attr.Name, diags)
	}
	converted, err := convert.Convert(value, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("attribute %q: %w", attr.Name, err)
	}
	if converted.IsNull() {
		return cty.NilVal, fmt.Errorf("attribute %q must not be null", attr.Name)
	}
	return converted, nil
}
