package reconcile

import (
	"io/fs"
	"path/filepath"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/filesystem"
	"github.com/pathmend/pathmend/pkg/paths"
)

const opMove = "move"

// MoveOptions configures Move.
type MoveOptions struct {
	// Backup names the suffix preserving an existing dest before it is
	// replaced. Nil falls back to the instance default; an explicit
	// empty string disables backup.
	Backup *string

	// KeepsState disables dry-run for this call.
	KeepsState bool
}

// Move relocates src to dest. An absent src is Unchanged, because the
// goal is "src no longer exists here", not "a move happened". When a
// backup suffix resolves and dest exists, dest is preserved first via
// a hard link to the derived backup path. The parent of dest is
// created when missing. The move prefers an atomic rename; a
// cross-device pair falls back to copy-then-delete. On failure src is
// left intact unless the move step itself had completed.
func (r *Reconciler) Move(src, dest string, opts MoveOptions) Outcome {
	r.reset()
	if err := paths.ValidatePath(src); err != nil {
		return r.fail(opMove, err)
	}
	if err := paths.ValidatePath(dest); err != nil {
		return r.fail(opMove, err)
	}
	if paths.ContainsPath(src, dest) || paths.ContainsPath(dest, src) {
		return r.fail(opMove, errors.Newf(errors.ErrValidation,
			"move endpoints overlap: %s and %s", src, dest))
	}

	if !r.AnyExists(src) {
		r.tracef("move: %s already absent", src)
		return unchanged()
	}

	noAction := r.resolveDryRun(opts.KeepsState, opMove, src)
	if noAction {
		r.verbosef("move: would move %s to %s", src, dest)
		return changed()
	}

	backup := r.resolveBackup(opts.Backup)
	if backup != "" && r.AnyExists(dest) {
		backupPath := dest + backup
		if res := r.Hardlink(dest, backupPath, LinkOptions{KeepsState: opts.KeepsState}); res.State == StateFailed {
			return r.fail(opMove, errors.Wrapf(res.Err, errors.CodeOf(res.Err),
				"backing up %s to %s", dest, backupPath))
		}
	}

	parent := filepath.Dir(dest)
	if !r.DirectoryExists(parent) {
		if res := r.Directory(parent, DirectoryOptions{KeepsState: opts.KeepsState}); res.State == StateFailed {
			return r.fail(opMove, errors.Wrapf(res.Err, errors.CodeOf(res.Err),
				"creating parent for %s", dest))
		}
	}

	if err := r.fs.Rename(src, dest); err != nil {
		if !filesystem.IsCrossDevice(err) {
			return r.fail(opMove, errors.Wrapf(err, errors.ErrOS,
				"moving %s to %s", src, dest))
		}
		r.debugf("move: %s and %s are on different filesystems, copying", src, dest)
		if err := r.copyPath(src, dest); err != nil {
			return r.fail(opMove, errors.Wrapf(err, errors.CodeOf(err),
				"copying %s to %s", src, dest))
		}
		if err := r.removeAny(src); err != nil {
			return r.fail(opMove, errors.Wrapf(err, errors.ErrOS,
				"removing %s after copy", src))
		}
	}

	r.verbosef("move: moved %s to %s", src, dest)
	return changed()
}

// copyPath is the cross-device fallback: it replicates src at dest,
// replacing whatever is there, preserving modes, symlink targets and
// file mtimes.
func (r *Reconciler) copyPath(src, dest string) error {
	info, err := r.fs.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOS, "inspecting %s", src)
	}
	if r.AnyExists(dest) {
		if err := r.removeAny(dest); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "clearing %s", dest)
		}
	}
	return r.copyEntry(src, dest, info)
}

func (r *Reconciler) copyEntry(src, dest string, info fs.FileInfo) error {
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		target, err := r.fs.Readlink(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOS, "reading link %s", src)
		}
		if err := r.fs.Symlink(target, dest); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "recreating link %s", dest)
		}
		return nil
	case mode.IsDir():
		if err := r.fs.MkdirAll(dest, mode.Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "creating %s", dest)
		}
		// MkdirAll is umask-limited; enforce the exact bits.
		if err := r.fs.Chmod(dest, mode.Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "chmod %s", dest)
		}
		entries, err := r.fs.ReadDir(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOS, "reading directory %s", src)
		}
		for _, entry := range entries {
			einfo, err := entry.Info()
			if err != nil {
				return errors.Wrapf(err, errors.ErrOS, "inspecting %s", filepath.Join(src, entry.Name()))
			}
			if err := r.copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name()), einfo); err != nil {
				return err
			}
		}
		return nil
	case mode.IsRegular():
		data, err := r.fs.ReadFile(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOS, "reading %s", src)
		}
		if err := r.fs.WriteFile(dest, data, mode.Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "writing %s", dest)
		}
		// WriteFile is umask-limited; enforce the exact bits.
		if err := r.fs.Chmod(dest, mode.Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "chmod %s", dest)
		}
		if err := r.fs.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
			return errors.Wrapf(err, errors.ErrOS, "setting mtime of %s", dest)
		}
		return nil
	default:
		return errors.Newf(errors.ErrUnsupported, "cannot copy special file %s", src)
	}
}
