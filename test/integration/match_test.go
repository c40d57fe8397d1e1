package integration_test

import (
	"testing"

	"github.com/renato0307/chord/test/integration/harness"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		envVars      map[string]string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "ctrl+s matches",
			args:         []string{"match", "ctrl+s, cmd+s", "--key", "s", "--ctrl"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "matched ctrl+s")
				harness.AssertStdoutContains(t, result, "Prevent:  true")
			},
		},
		{
			name:         "wrong key exits non-zero",
			args:         []string{"match", "ctrl+s", "--key", "a", "--ctrl"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "no match")
				harness.AssertStderrEmpty(t, result)
			},
		},
		{
			name:         "typing in an input is suppressed",
			args:         []string{"match", "ctrl+s", "--key", "s", "--ctrl", "--target", "textarea"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "suppressed")
			},
		},
		{
			name:         "strict policy from the environment",
			args:         []string{"match", "cmd+s", "--key", "s", "--meta", "--format", "json"},
			envVars:      map[string]string{"CHORD_MODIFIER_POLICY": "strict"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "policy", "strict")
				harness.AssertJSONContains(t, result, "matched", true)
			},
		},
		{
			name:         "lone command key holds ctrl and meta by default",
			args:         []string{"match", "ctrl+cmd+s", "--key", "s", "--meta", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "policy", "meta-as-control")
				harness.AssertJSONContains(t, result, "event", "meta+s")
			},
		},
		{
			name:         "unknown key name is an error",
			args:         []string{"match", "ctrl+s", "--key", "nope"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "does not resolve")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			for k, v := range tt.envVars {
				env.SetEnv(k, v)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
