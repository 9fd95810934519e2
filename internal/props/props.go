// Package props loads seed properties from a flat YAML mapping file. Seed
// properties populate the variable store before the first refresh, the way
// an installer seeds platform facts and defaults.
package props

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file of `name: value` pairs. Scalar values are
// stringified; nested structures are rejected because the variable store
// holds strings only.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse properties file %s: %w", path, err)
	}

	properties := make(map[string]string, len(raw))
	for name, value := range raw {
		s, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("property %q in %s: %w", name, path, err)
		}
		properties[name] = s
	}
	return properties, nil
}

// stringify converts a YAML scalar to its string form.
func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("value must be a scalar, got %T", value)
	}
}
