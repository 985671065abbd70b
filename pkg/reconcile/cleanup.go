package reconcile

import (
	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/paths"
)

const opCleanup = "cleanup"

// CleanupOptions configures Cleanup.
type CleanupOptions struct {
	// Backup overrides the instance backup suffix for this call.
	// Nil falls back to the instance default; an explicit empty string
	// disables backup.
	Backup *string

	// KeepsState disables dry-run for this call.
	KeepsState bool
}

// Cleanup makes dest not exist. An already-absent dest is Unchanged.
// When a backup suffix resolves, dest is relocated to the derived
// backup path instead of destroyed; a stale entry at the backup path
// is removed first, without a backup of its own. The relocation is a
// single rename, so a failure there leaves dest intact. Without a
// backup, dest is removed, recursively when it is a directory.
func (r *Reconciler) Cleanup(dest string, opts CleanupOptions) Outcome {
	r.reset()
	if err := paths.ValidatePath(dest); err != nil {
		return r.fail(opCleanup, err)
	}

	if !r.AnyExists(dest) {
		r.tracef("cleanup: %s already absent", dest)
		return unchanged()
	}

	backup := r.resolveBackup(opts.Backup)
	noAction := r.resolveDryRun(opts.KeepsState, opCleanup, dest)

	if backup != "" {
		backupPath := dest + backup
		if noAction {
			r.verbosef("cleanup: would move %s to backup %s", dest, backupPath)
			return changed()
		}
		// Backups never chain: a stale entry at the backup path is
		// destroyed outright.
		if r.AnyExists(backupPath) {
			if err := r.removeAny(backupPath); err != nil {
				return r.fail(opCleanup, errors.Wrapf(err, errors.ErrOS,
					"removing stale backup %s", backupPath))
			}
			r.debugf("cleanup: removed stale backup %s", backupPath)
		}
		if err := r.fs.Rename(dest, backupPath); err != nil {
			return r.fail(opCleanup, errors.Wrapf(err, errors.ErrOS,
				"moving %s to backup %s", dest, backupPath))
		}
		r.verbosef("cleanup: moved %s to backup %s", dest, backupPath)
		return changed()
	}

	if noAction {
		r.verbosef("cleanup: would remove %s", dest)
		return changed()
	}
	if err := r.removeAny(dest); err != nil {
		return r.fail(opCleanup, errors.Wrapf(err, errors.ErrOS, "removing %s", dest))
	}
	r.verbosef("cleanup: removed %s", dest)
	return changed()
}
