// pkg/reconcile/status_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: real filesystem (t.TempDir)
// PURPOSE: Verify exact read-before-write attribute enforcement

package reconcile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/reconcile"
	"github.com/pathmend/pathmend/pkg/testutil"
)

func TestStatusMissingPathFails(t *testing.T) {
	r := reconcile.New(reconcile.Options{})

	res := r.Status(filepath.Join(t.TempDir(), "missing"), reconcile.StatusOptions{})
	require.Equal(t, reconcile.StateFailed, res.State)
	assert.True(t, errors.IsCode(res.Err, errors.ErrPrecondition))
}

func TestStatusModeExactness(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")
	require.NoError(t, os.Chmod(file, 0o644))

	// Already at the desired mode: no OS call, no change.
	res := r.Status(file, reconcile.StatusOptions{Mode: reconcile.Mode(0o644)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)

	res = r.Status(file, reconcile.StatusOptions{Mode: reconcile.Mode(0o600)})
	require.Equal(t, reconcile.StateChanged, res.State)
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	res = r.Status(file, reconcile.StatusOptions{Mode: reconcile.Mode(0o600)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestStatusMTime(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")
	when := time.Date(2019, 11, 5, 6, 0, 0, 0, time.UTC)

	res := r.Status(file, reconcile.StatusOptions{MTime: reconcile.Time(when)})
	require.Equal(t, reconcile.StateChanged, res.State)
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, when.Unix(), info.ModTime().Unix())

	res = r.Status(file, reconcile.StatusOptions{MTime: reconcile.Time(when)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestStatusOwnershipAlreadyCorrect(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")

	// The file is owned by the running user, so enforcing the current
	// uid and gid compares equal and issues no chown.
	res := r.Status(file, reconcile.StatusOptions{
		Owner: strconv.Itoa(os.Getuid()),
		Group: strconv.Itoa(os.Getgid()),
	})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestStatusUnknownOwnerFails(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")

	res := r.Status(file, reconcile.StatusOptions{Owner: "no-such-user-pathmend"})
	require.Equal(t, reconcile.StateFailed, res.State)
	assert.True(t, errors.IsCode(res.Err, errors.ErrPrecondition))
}

func TestStatusUnspecifiedAttributesUntouched(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")
	require.NoError(t, os.Chmod(file, 0o640))
	before, err := os.Stat(file)
	require.NoError(t, err)

	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	res := r.Status(file, reconcile.StatusOptions{MTime: reconcile.Time(when)})
	require.Equal(t, reconcile.StateChanged, res.State)

	after, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, before.Mode().Perm(), after.Mode().Perm())
}

func TestStatusCombinedAttributes(t *testing.T) {
	r := reconcile.New(reconcile.Options{})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")
	require.NoError(t, os.Chmod(file, 0o644))
	when := time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC)

	res := r.Status(file, reconcile.StatusOptions{
		Mode:  reconcile.Mode(0o600),
		MTime: reconcile.Time(when),
	})
	require.Equal(t, reconcile.StateChanged, res.State)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.Equal(t, when.Unix(), info.ModTime().Unix())

	res = r.Status(file, reconcile.StatusOptions{
		Mode:  reconcile.Mode(0o600),
		MTime: reconcile.Time(when),
	})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}

func TestStatusSimulateProjectsWithoutWriting(t *testing.T) {
	sink := &testSink{}
	r := reconcile.New(reconcile.Options{Simulate: true, Sink: sink})
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "f", "x")
	require.NoError(t, os.Chmod(file, 0o644))

	res := r.Status(file, reconcile.StatusOptions{Mode: reconcile.Mode(0o600)})
	assert.Equal(t, reconcile.StateChanged, res.State)
	assert.True(t, sink.verboseContaining("would chmod"))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// Matching state projects Unchanged even in simulate mode.
	res = r.Status(file, reconcile.StatusOptions{Mode: reconcile.Mode(0o644)})
	assert.Equal(t, reconcile.StateUnchanged, res.State)
}
