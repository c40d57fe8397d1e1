// Package harness provides utilities for integration testing the chord CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CHORD_HOME: Isolated per test (temp directory)
//   - CHORD_DEBUG: Disabled to reduce noise
package harness
