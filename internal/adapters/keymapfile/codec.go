// Package keymapfile stores keymaps as YAML files and watches them for edits.
//
// The shortcuts mapping is read through yaml.Node so its key order, which is the
// match priority, survives a round trip:
//
//	name: default
//	description: Demo keys
//	shortcuts:
//	  ctrl+s, cmd+s: save
//	  ctrl+z: undo
package keymapfile

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/renato0307/chord/internal/domain"
)

// ErrMalformed is returned when a file is valid YAML but not a keymap
var ErrMalformed = errors.New("malformed keymap file")

// document is the top-level shape of a keymap file
type document struct {
	Description string    `yaml:"description,omitempty"`
	Name        string    `yaml:"name"`
	Shortcuts   yaml.Node `yaml:"shortcuts"`
}

// Decode parses a keymap document
func Decode(data []byte) (*domain.Keymap, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	keymap := &domain.Keymap{
		Description: doc.Description,
		Name:        doc.Name,
	}

	node := doc.Shortcuts
	if node.Kind == 0 {
		return keymap, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: shortcuts must be a mapping (line %d)", ErrMalformed, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: shortcut entries must be scalars (line %d)", ErrMalformed, key.Line)
		}
		keymap.Entries = append(keymap.Entries, domain.KeymapEntry{
			Action:   value.Value,
			Shortcut: key.Value,
		})
	}
	return keymap, nil
}

// Encode renders a keymap document, keeping entry order
func Encode(keymap domain.Keymap) ([]byte, error) {
	shortcuts := yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range keymap.Entries {
		shortcuts.Content = append(shortcuts.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Shortcut},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Action},
		)
	}

	doc := document{
		Description: keymap.Description,
		Name:        keymap.Name,
		Shortcuts:   shortcuts,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keymap: %w", err)
	}
	return data, nil
}
