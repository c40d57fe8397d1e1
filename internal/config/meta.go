package config

import (
	"reflect"
	"strings"

	"github.com/renato0307/chord/internal/domain"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		// Handle KeyBindingsConfig pointer
		if elemType.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"quit": "q",
				"help": []string{"h", "?"},
			}
		}

		switch elemType.Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			if fieldName == "debug" || fieldName == "watch" {
				return true
			}
			return false
		case reflect.Int:
			// Return int value directly (not pointer)
			if fieldName == "max_log_files" {
				return 1000
			}
			if fieldName == "ssh_port" {
				return DefaultSSHPort
			}
			return 10
		}
	}

	// Handle direct types
	switch t.Kind() {
	case reflect.String:
		// Generate contextual examples based on field name
		switch fieldName {
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "keymap":
			return "default"
		case "keymap_file":
			return "~/.chord/keymaps/default.yaml"
		case "modifier_policy":
			return string(domain.PolicyMetaAsControl)
		case "ssh_host":
			return "localhost"
		default:
			return "example"
		}
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"quit": "q",
				"help": []string{"h", "?"},
			}
		}
	case reflect.Slice:
		// Check if it's StringArray type
		if t.Name() == "StringArray" || (t.Elem().Kind() == reflect.String) {
			return []string{"example1", "example2"}
		}
	}

	return nil
}
