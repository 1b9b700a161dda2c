package provider

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	enhancedenum "github.com/jasujm/enhanced-enum"
)

// DecodeYAML reads enum descriptions from a YAML stream. The stream may
// hold several documents separated by "---", and each document may be a
// single description or a sequence of them.
func DecodeYAML(r io.Reader) ([]enhancedenum.Description, error) {
	dec := yaml.NewDecoder(r)
	var descs []enhancedenum.Description
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if len(node.Content) == 0 {
			continue
		}

		root := node.Content[0]
		switch {
		case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
			continue
		case root.Kind == yaml.SequenceNode:
			for _, item := range root.Content {
				if err := checkDescriptionKeys(item); err != nil {
					return nil, fmt.Errorf("document %d: %w", doc, err)
				}
			}
			var batch []enhancedenum.Description
			if err := root.Decode(&batch); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			descs = append(descs, batch...)
		case root.Kind == yaml.MappingNode:
			if err := checkDescriptionKeys(root); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			var desc enhancedenum.Description
			if err := root.Decode(&desc); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			descs = append(descs, desc)
		default:
			return nil, fmt.Errorf("document %d, line %d: expected an enum description, got %s", doc, root.Line, root.ShortTag())
		}
	}
	return descs, nil
}

var (
	descriptionKeys = []string{"typename", "docstring", "members"}
	memberKeys      = []string{"name", "value"}
)

// checkDescriptionKeys rejects keys that a description or its members do
// not have. Shapes are left to the decoder.
func checkDescriptionKeys(node *yaml.Node) error {
	if err := checkKeys(node, descriptionKeys); err != nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "members" || node.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		for _, member := range node.Content[i+1].Content {
			if err := checkKeys(member, memberKeys); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkKeys(node *yaml.Node, known []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

// ReadYAMLFile reads enum descriptions from the named file.
func ReadYAMLFile(name string) ([]enhancedenum.Description, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	descs, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return descs, nil
}
