// pkg/reconcile/directory_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: real filesystem (t.TempDir)
// PURPOSE: Verify directory reconciliation, temp templates and dry-run purity

package reconcile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmend/pathmend/pkg/reconcile"
	"github.com/pathmend/pathmend/pkg/testutil"
)

func TestDirectoryIdempotence(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	res := r.Directory(path, reconcile.DirectoryOptions{})
	require.Equal(t, reconcile.StateChanged, res.State)
	assert.Equal(t, path, res.Path)
	assert.DirExists(t, path)

	// Second call observes no difference.
	res = r.Directory(path, reconcile.DirectoryOptions{})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
	assert.Equal(t, path, res.Path)
}

func TestDirectoryAttributeEnforcement(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	path := filepath.Join(t.TempDir(), "managed")

	res := r.Directory(path, reconcile.DirectoryOptions{Mode: reconcile.Mode(0o750)})
	require.Equal(t, reconcile.StateChanged, res.State)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())

	// Existing directory, matching attributes: nothing to do.
	res = r.Directory(path, reconcile.DirectoryOptions{Mode: reconcile.Mode(0o750)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)

	// Existing directory, drifted attributes: still Changed.
	require.NoError(t, os.Chmod(path, 0o700))
	res = r.Directory(path, reconcile.DirectoryOptions{Mode: reconcile.Mode(0o750)})
	assert.Equal(t, reconcile.StateChanged, res.State)
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
}

func TestDirectoryMTime(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	path := filepath.Join(t.TempDir(), "dated")
	when := time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC)

	res := r.Directory(path, reconcile.DirectoryOptions{MTime: reconcile.Time(when)})
	require.Equal(t, reconcile.StateChanged, res.State)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, when.Unix(), info.ModTime().Unix())

	res = r.Directory(path, reconcile.DirectoryOptions{MTime: reconcile.Time(when)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestDirectoryOverExistingFileFails(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "occupied", "x")

	res := r.Directory(file, reconcile.DirectoryOptions{})
	assert.Equal(t, reconcile.StateFailed, res.State)
	assert.Error(t, r.LastFailure())
}

func TestDirectoryTempTemplate(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	parent := filepath.Join(t.TempDir(), "scratch")
	template := filepath.Join(parent, "work-XXXXXX")

	res := r.Directory(template, reconcile.DirectoryOptions{Temp: true})
	require.Equal(t, reconcile.StateChanged, res.State)
	require.NotEmpty(t, res.Path)

	// The template expanded to a unique sibling, parents included.
	assert.NotEqual(t, template, res.Path)
	assert.Equal(t, parent, filepath.Dir(res.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(res.Path), "work-"))
	assert.DirExists(t, res.Path)

	// A second expansion yields a distinct directory.
	res2 := r.Directory(template, reconcile.DirectoryOptions{Temp: true})
	require.Equal(t, reconcile.StateChanged, res2.State)
	assert.NotEqual(t, res.Path, res2.Path)
}

func TestDirectoryTempAppliesMode(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	template := filepath.Join(t.TempDir(), "tmp-XXXXXX")

	res := r.Directory(template, reconcile.DirectoryOptions{Temp: true, Mode: reconcile.Mode(0o755)})
	require.Equal(t, reconcile.StateChanged, res.State)

	info, err := os.Stat(res.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCleanupTempDirs(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	template := filepath.Join(t.TempDir(), "sweep-XXXXXX")

	res := r.Directory(template, reconcile.DirectoryOptions{Temp: true})
	require.Equal(t, reconcile.StateChanged, res.State)
	require.DirExists(t, res.Path)

	reconcile.CleanupTempDirs()
	assert.NoDirExists(t, res.Path)

	// Idempotent: sweeping again is harmless.
	reconcile.CleanupTempDirs()
}

func TestDirectoryDryRunPurity(t *testing.T) {
	sink := &testSink{}
	r := reconcile.New(reconcile.Options{Simulate: true, Sink: sink})
	path := filepath.Join(t.TempDir(), "never-made")

	res := r.Directory(path, reconcile.DirectoryOptions{})
	assert.Equal(t, reconcile.StateChanged, res.State)
	assert.Equal(t, path, res.Path)
	assert.NoDirExists(t, path)
	assert.NoError(t, r.LastFailure())
	assert.True(t, sink.verboseContaining("would create"))

	// An existing directory is still inspected under simulate, so the
	// projection stays exact.
	existing := t.TempDir()
	res = r.Directory(existing, reconcile.DirectoryOptions{})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestDirectoryTempDryRunHasNoPayload(t *testing.T) {
	r := reconcile.New(reconcile.Options{Simulate: true})
	template := filepath.Join(t.TempDir(), "ghost-XXXXXX")

	res := r.Directory(template, reconcile.DirectoryOptions{Temp: true})
	assert.Equal(t, reconcile.StateChanged, res.State)
	assert.Empty(t, res.Path)
	assert.NoDirExists(t, template)
}

func TestDirectoryKeepsStateOverridesSimulate(t *testing.T) {
	r := reconcile.New(reconcile.Options{Simulate: true})
	path := filepath.Join(t.TempDir(), "real")

	res := r.Directory(path, reconcile.DirectoryOptions{KeepsState: true})
	assert.Equal(t, reconcile.StateChanged, res.State)
	assert.DirExists(t, path)
}
