// cmd/pathmend/commands/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: temp directories, environment variables (t.Setenv)
// PURPOSE: Exercise the CLI verbs end to end against a real filesystem

package commands_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmend/pathmend/cmd/pathmend/commands"
	"github.com/pathmend/pathmend/pkg/paths"
)

// isolate points config and state discovery at throwaway directories so
// tests never read the developer's real configuration.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))
}

func TestDirCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "a", "b")

	out, err := runCommand(t, "dir", path, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")
	assert.DirExists(t, path)

	out, err = runCommand(t, "dir", path, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestDirCommandSimulate(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "missing")

	out, err := runCommand(t, "dir", path, "--simulate", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")
	assert.Contains(t, out, "directory: would create")
	assert.NoDirExists(t, path)
}

func TestDirCommandTempReportsResolved(t *testing.T) {
	isolate(t)
	parent := t.TempDir()
	template := filepath.Join(parent, "work-XXXX")

	out, err := runCommand(t, "dir", template, "--temp", "--output", "json")
	require.NoError(t, err)

	var res struct {
		State    string `json:"state"`
		Resolved string `json:"resolved"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "changed", res.State)
	assert.True(t, strings.HasPrefix(res.Resolved, filepath.Join(parent, "work-")))
	assert.DirExists(t, res.Resolved)
}

func TestLinkCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	writeFile(t, target, "content")

	out, err := runCommand(t, "link", target, link, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	out, err = runCommand(t, "link", target, link, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestLinkCommandForceAndBackup(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	writeFile(t, target, "managed")
	writeFile(t, link, "precious")

	// A file in the way fails without --force and stays untouched.
	out, err := runCommand(t, "link", target, link, "--output", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrOperationFailed))
	assert.Contains(t, out, "failed")
	data, readErr := os.ReadFile(link)
	require.NoError(t, readErr)
	assert.Equal(t, "precious", string(data))

	// With --force and a backup suffix the file is preserved.
	out, err = runCommand(t, "link", target, link, "--force", "--backup", ".orig", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	data, err = os.ReadFile(link + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
}

func TestHardlinkCommandRequiresTarget(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := runCommand(t, "hardlink", filepath.Join(dir, "missing"), filepath.Join(dir, "link"), "--output", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrOperationFailed))
	assert.Contains(t, out, "failed")
}

func TestCleanCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "victim")
	writeFile(t, path, "bye")

	out, err := runCommand(t, "clean", path, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")
	assert.NoFileExists(t, path)

	// Absent already: a successful, unchanged outcome.
	out, err = runCommand(t, "clean", path, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestCleanCommandBackup(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "victim")
	writeFile(t, path, "keep me")

	_, err := runCommand(t, "clean", path, "--backup", ".prev", "--output", "text")
	require.NoError(t, err)

	assert.NoFileExists(t, path)
	data, err := os.ReadFile(path + ".prev")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestCleanCommandKeepStateOverridesSimulate(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "scratch")
	writeFile(t, path, "temp data")

	out, err := runCommand(t, "clean", path, "--simulate", "--keep-state", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")
	assert.NoFileExists(t, path)
}

func TestMoveCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dest := filepath.Join(dir, "sub", "dest")
	writeFile(t, src, "payload")

	out, err := runCommand(t, "move", src, dest, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")
	assert.NoFileExists(t, src)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveCommandRejectsOverlap(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := runCommand(t, "move", dir, filepath.Join(dir, "inside"), "--output", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrOperationFailed))
	assert.Contains(t, out, "failed")
}

func TestStatusCommandMode(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "data")

	out, err := runCommand(t, "status", path, "--mode", "600", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "changed")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err = runCommand(t, "status", path, "--mode", "600", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestListCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "")
	writeFile(t, filepath.Join(dir, "b.log"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	t.Run("text lists entries sorted", func(t *testing.T) {
		out, err := runCommand(t, "list", dir, "--output", "text")
		require.NoError(t, err)
		assert.Equal(t, "a.txt\nb.log\nsub\n", out)
	})

	t.Run("json carries entries", func(t *testing.T) {
		out, err := runCommand(t, "list", dir, "--filter", `\.txt$`, "--output", "json")
		require.NoError(t, err)

		var res struct {
			Entries []string `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, []string{"a.txt"}, res.Entries)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		out, err := runCommand(t, "list", filepath.Join(dir, "nope"), "--output", "text")
		require.Error(t, err)
		assert.True(t, errors.Is(err, commands.ErrOperationFailed))
		assert.Contains(t, out, "failed")
	})
}

func TestExistsCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "present")
	writeFile(t, file, "")

	out, err := runCommand(t, "exists", file, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "present")

	out, err = runCommand(t, "exists", filepath.Join(dir, "missing"), "--output", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrOperationFailed))
	assert.Contains(t, out, "absent")

	// Kind mismatch counts as absent.
	out, err = runCommand(t, "exists", file, "--type", "dir", "--output", "text")
	require.Error(t, err)
	assert.Contains(t, out, "absent")
}

func TestConfigInitAndShow(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, "config", "init", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote starter config")

	content, err := os.ReadFile(paths.ConfigFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "# simulate = false")

	// A second init refuses to clobber without --force.
	_, err = runCommand(t, "config", "init")
	require.Error(t, err)
	assert.False(t, errors.Is(err, commands.ErrOperationFailed))

	_, err = runCommand(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = runCommand(t, "config", "show", "--output", "json", "--backup", ".bak")
	require.NoError(t, err)

	var cfg struct {
		Simulate     bool   `json:"simulate"`
		BackupSuffix string `json:"backup_suffix"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.False(t, cfg.Simulate)
	assert.Equal(t, ".bak", cfg.BackupSuffix)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathmend version")
}

func TestUnknownOutputFormatFails(t *testing.T) {
	isolate(t)

	_, err := runCommand(t, "exists", "/", "--output", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
