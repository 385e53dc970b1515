package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"diffpair/internal/window"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if s.IsSingle() {
		return s[0], nil
	}

	return []string(s), nil
}

// --- WindowSpec YAML methods ---

// windowFields mirrors WindowSpec without its methods to avoid recursion.
type windowFields struct {
	Line  int `yaml:"line"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// UnmarshalYAML accepts "line:start:end" or a mapping with line, start and end.
func (w *WindowSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		parsed, err := window.Parse(str)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*w = WindowSpec{Line: parsed.Line + 1, Start: parsed.Start, End: parsed.End}

		return nil

	case yaml.MappingNode:
		var fields windowFields
		if err := node.Decode(&fields); err != nil {
			return err
		}

		*w = WindowSpec(fields)

		return nil

	default:
		return fmt.Errorf("line %d: expected \"line:start:end\" or mapping, got %v", node.Line, node.Kind)
	}
}
