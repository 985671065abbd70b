package reconcile

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/logging"
	"github.com/pathmend/pathmend/pkg/paths"
)

const opDirectory = "directory"

// defaultDirMode is the creation mode for directories when no Mode
// option is given. The subsequent status pass applies the exact bits.
const defaultDirMode fs.FileMode = 0o755

// tempDirs records every temporary directory created through the Temp
// option, process-wide, for the best-effort sweep at termination.
var tempDirs = mapset.NewSet[string]()

// DirectoryOptions configures Directory.
type DirectoryOptions struct {
	// Temp treats path as a template: its final component becomes the
	// pattern for the OS unique-name facility, with a trailing run of
	// X placeholders marking where the unique part goes. The created
	// directory is registered for removal by CleanupTempDirs.
	Temp bool

	// Owner is the desired owner, a user name or numeric uid.
	Owner string

	// Group is the desired group, a group name or numeric gid.
	Group string

	// Mode is the desired permission bits.
	Mode *fs.FileMode

	// MTime is the desired modification time.
	MTime *time.Time

	// KeepsState disables dry-run for this call.
	KeepsState bool
}

// Directory ensures path is a directory and applies any requested
// attributes. Missing parents are created. The outcome carries the
// resolved path, which differs from the requested one when Temp
// expanded a template. Changed is reported when the directory was
// created or any attribute changed, Unchanged otherwise.
//
// Under dry-run, a Temp request creates nothing and the outcome
// carries no usable path payload.
func (r *Reconciler) Directory(path string, opts DirectoryOptions) Outcome {
	r.reset()
	if err := paths.ValidatePath(path); err != nil {
		return r.fail(opDirectory, err)
	}

	noAction := r.resolveDryRun(opts.KeepsState, opDirectory, path)
	createMode := defaultDirMode
	if opts.Mode != nil {
		createMode = *opts.Mode & modeMask
	}

	resolved := path
	created := false

	if opts.Temp {
		if noAction {
			r.verbosef("directory: would create temporary directory from template %s", path)
			return Outcome{State: StateChanged}
		}
		made, err := r.makeTempDir(path)
		if err != nil {
			return r.fail(opDirectory, err)
		}
		resolved = made
		created = true
	} else if !r.DirectoryExists(resolved) {
		if noAction {
			r.verbosef("directory: would create %s", resolved)
			return Outcome{State: StateChanged, Path: resolved}
		}
		if err := r.fs.MkdirAll(resolved, createMode); err != nil {
			return r.fail(opDirectory, errors.Wrapf(err, errors.ErrOS, "creating %s", resolved))
		}
		r.debugf("directory: created %s", resolved)
		created = true
	}

	// Ownership, exact mode and mtime are enforced in a separate pass
	// even for fresh directories, so creation never leaves a partially
	// applied state behind an OS-level failure.
	statusOpts := StatusOptions{
		Owner: opts.Owner,
		Group: opts.Group,
		Mode:  opts.Mode,
		MTime: opts.MTime,
	}
	attrChanged, err := r.applyStatus(resolved, statusOpts, noAction)
	if err != nil {
		return r.fail(opDirectory, err)
	}

	if created || attrChanged {
		return Outcome{State: StateChanged, Path: resolved}
	}
	return Outcome{State: StateUnchanged, Path: resolved}
}

// makeTempDir expands a temporary-directory template: parents are
// created first, the final component becomes the unique-name pattern.
func (r *Reconciler) makeTempDir(template string) (string, error) {
	parent := filepath.Dir(template)
	if !r.DirectoryExists(parent) {
		if err := r.fs.MkdirAll(parent, defaultDirMode); err != nil {
			return "", errors.Wrapf(err, errors.ErrOS, "creating parent %s", parent)
		}
	}

	// A trailing run of X placeholders marks the unique part; without
	// one the unique suffix is appended to the name.
	pattern := strings.TrimRight(filepath.Base(template), "X") + "*"
	made, err := r.fs.MkdirTemp(parent, pattern)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrOS,
			"creating temporary directory from template %s", template)
	}

	tempDirs.Add(made)
	r.debugf("directory: created temporary directory %s", made)
	return made, nil
}

// CleanupTempDirs removes every temporary directory created through
// the Temp option. It is idempotent and best-effort: failures are
// traced, never returned, and failed entries stay registered so a
// later call retries them. The owning process calls it once at orderly
// termination.
func CleanupTempDirs() {
	logger := logging.GetLogger("reconcile.tempdirs")
	for _, dir := range tempDirs.ToSlice() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Trace().Err(err).Str("dir", dir).Msg("Failed to remove temporary directory")
			continue
		}
		logger.Trace().Str("dir", dir).Msg("Removed temporary directory")
		tempDirs.Remove(dir)
	}
}
