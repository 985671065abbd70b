// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: environment variables (t.Setenv)
// PURPOSE: Verify XDG directory resolution and home expansion

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathmend/pathmend/pkg/paths"
)

func TestConfigDirHonorsOverride(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	assert.Equal(t, "/custom/config", paths.ConfigDir())
	assert.Equal(t, filepath.Join("/custom/config", "pathmend.toml"), paths.ConfigFilePath())
}

func TestStateDirHonorsOverride(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/custom/state")
	assert.Equal(t, "/custom/state", paths.StateDir())
	assert.Equal(t, filepath.Join("/custom/state", "pathmend.log"), paths.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare tilde",
			input:    "~",
			expected: "/home/tester",
		},
		{
			name:     "tilde with path",
			input:    "~/dir/file",
			expected: "/home/tester/dir/file",
		},
		{
			name:     "tilde user is untouched",
			input:    "~other/file",
			expected: "~other/file",
		},
		{
			name:     "absolute path is untouched",
			input:    "/etc/hosts",
			expected: "/etc/hosts",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paths.ExpandHome(tt.input))
		})
	}
}
