package reconcile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/filesystem"
	"github.com/pathmend/pathmend/pkg/paths"
)

// linkKind selects the link flavor the shared routine creates.
type linkKind int

const (
	kindSymlink linkKind = iota
	kindHardlink
)

func (k linkKind) String() string {
	switch k {
	case kindSymlink:
		return "symlink"
	case kindHardlink:
		return "hardlink"
	default:
		return "unknown"
	}
}

// LinkOptions configures Symlink and Hardlink.
type LinkOptions struct {
	// Check requires the symlink target to exist. Hardlink targets are
	// always checked, so Hardlink ignores it.
	Check bool

	// Force allows replacing an existing regular file at the link
	// path. Directories are never replaced.
	Force bool

	// Backup names the suffix preserving an entry replaced under
	// Force. Nil falls back to the instance default; an explicit empty
	// string disables backup.
	Backup *string

	// KeepsState disables dry-run for this call.
	KeepsState bool
}

// Symlink makes link a symbolic link to target. The target is kept
// exactly as given, so relative targets stay relative, and by default
// it does not have to exist; Check requires it. A link already
// pointing at target is Unchanged; a link pointing elsewhere is
// updated.
func (r *Reconciler) Symlink(target, link string, opts LinkOptions) Outcome {
	return r.makeLink(kindSymlink, target, link, opts)
}

// Hardlink makes link a hard link to target. The target must exist
// and must reside on the same filesystem as link; the OS call rejects
// a cross-device pair. A link already sharing the target's inode is
// Unchanged; any other non-directory entry at the link path is
// re-linked.
func (r *Reconciler) Hardlink(target, link string, opts LinkOptions) Outcome {
	return r.makeLink(kindHardlink, target, link, opts)
}

// makeLink is the shared state machine behind Symlink and Hardlink.
func (r *Reconciler) makeLink(kind linkKind, target, link string, opts LinkOptions) Outcome {
	r.reset()
	op := kind.String()

	if err := paths.ValidatePath(target); err != nil {
		return r.fail(op, err)
	}
	if err := paths.ValidatePath(link); err != nil {
		return r.fail(op, err)
	}

	if (kind == kindHardlink || opts.Check) && !r.AnyExists(target) {
		return r.fail(op, errors.Newf(errors.ErrPrecondition,
			"%s target %s does not exist", op, target))
	}

	noAction := r.resolveDryRun(opts.KeepsState, op, link)

	info, err := r.fs.Lstat(link)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return r.fail(op, errors.Wrapf(err, errors.ErrOS, "inspecting %s", link))
	}

	if exists {
		correct, err := r.linkMatches(kind, target, link, info)
		if err != nil {
			return r.fail(op, err)
		}
		if correct {
			r.tracef("%s: %s already points at %s", op, link, target)
			return unchanged()
		}

		if r.linkUpdatable(kind, info) {
			// Correct kind of entry pointing elsewhere: re-link.
			if noAction {
				r.verbosef("%s: would update %s to point at %s", op, link, target)
				return changed()
			}
			if err := r.fs.Remove(link); err != nil {
				return r.fail(op, errors.Wrapf(err, errors.ErrOS,
					"removing %s before update", link))
			}
			if err := r.createLink(kind, target, link); err != nil {
				return r.fail(op, err)
			}
			r.verbosef("%s: updated %s to point at %s", op, link, target)
			return changed()
		}

		// Wrong kind of entry at the link path.
		if !opts.Force || !info.Mode().IsRegular() {
			return r.fail(op, errors.Newf(errors.ErrPrecondition,
				"%s exists and is not a %s (force replaces only regular files)", link, op))
		}
		if noAction {
			r.verbosef("%s: would replace %s with a link to %s", op, link, target)
			return changed()
		}
		// Forced replacement preserves the entry per the backup policy.
		if res := r.Cleanup(link, CleanupOptions{Backup: opts.Backup, KeepsState: opts.KeepsState}); res.State == StateFailed {
			return r.fail(op, errors.Wrapf(res.Err, errors.CodeOf(res.Err),
				"replacing %s", link))
		}
		if err := r.createLink(kind, target, link); err != nil {
			return r.fail(op, err)
		}
		r.verbosef("%s: replaced %s with a link to %s", op, link, target)
		return changed()
	}

	parent := filepath.Dir(link)
	if !r.DirectoryExists(parent) {
		if res := r.Directory(parent, DirectoryOptions{KeepsState: opts.KeepsState}); res.State == StateFailed {
			return r.fail(op, errors.Wrapf(res.Err, errors.CodeOf(res.Err),
				"creating parent for %s", link))
		}
	}

	if noAction {
		r.verbosef("%s: would create %s pointing at %s", op, link, target)
		return changed()
	}
	if err := r.createLink(kind, target, link); err != nil {
		return r.fail(op, err)
	}
	r.verbosef("%s: created %s pointing at %s", op, link, target)
	return changed()
}

// linkMatches reports whether the existing entry at link already is
// the wanted link to target.
func (r *Reconciler) linkMatches(kind linkKind, target, link string, info fs.FileInfo) (bool, error) {
	switch kind {
	case kindSymlink:
		if info.Mode()&fs.ModeSymlink == 0 {
			return false, nil
		}
		current, err := r.fs.Readlink(link)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrOS, "reading link %s", link)
		}
		return current == target, nil
	case kindHardlink:
		if info.IsDir() {
			return false, nil
		}
		tinfo, err := r.fs.Lstat(target)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrOS, "inspecting target %s", target)
		}
		return filesystem.SameFile(info, tinfo), nil
	default:
		return false, errors.Newf(errors.ErrUnsupported, "link kind %v not implemented", kind)
	}
}

// linkUpdatable reports whether the existing entry is the correct kind
// for an in-place re-link. Symlinks update symlinks; hardlinks update
// any non-directory entry, since a hard link is just another name for
// a file.
func (r *Reconciler) linkUpdatable(kind linkKind, info fs.FileInfo) bool {
	switch kind {
	case kindSymlink:
		return info.Mode()&fs.ModeSymlink != 0
	case kindHardlink:
		return !info.IsDir()
	default:
		return false
	}
}

// createLink issues the OS call for the selected kind.
func (r *Reconciler) createLink(kind linkKind, target, link string) error {
	var err error
	switch kind {
	case kindSymlink:
		err = r.fs.Symlink(target, link)
	case kindHardlink:
		err = r.fs.Link(target, link)
	default:
		return errors.Newf(errors.ErrUnsupported, "link kind %v not implemented", kind)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOS, "creating %s %s", kind, link)
	}
	return nil
}
