package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CHORD_HOME.
type TestEnvironment struct {
	ChordHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CHORD_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	chordHome := tb.TempDir()

	if err := os.MkdirAll(filepath.Join(chordHome, "keymaps"), 0755); err != nil {
		tb.Fatalf("Failed to create keymaps directory: %v", err)
	}

	return &TestEnvironment{
		ChordHome: chordHome,
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CHORD_* variables and sets:
//   - CHORD_HOME to the temp directory
//   - CHORD_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["CHORD_HOME"] = true
	overrideKeys["CHORD_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing CHORD_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CHORD_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CHORD_HOME="+e.ChordHome,
		"CHORD_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.ChordHome, "chord.db")
}

// KeymapsPath returns the path to the keymaps directory.
func (e *TestEnvironment) KeymapsPath() string {
	return filepath.Join(e.ChordHome, "keymaps")
}

// WriteKeymapFile writes a YAML keymap into the keymaps directory and returns its path.
func (e *TestEnvironment) WriteKeymapFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.KeymapsPath(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write keymap file: %v", err)
	}
	return path
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
