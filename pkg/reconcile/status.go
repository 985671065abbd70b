package reconcile

import (
	"io/fs"
	"os/user"
	"strconv"
	"time"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/filesystem"
	"github.com/pathmend/pathmend/pkg/paths"
)

const opStatus = "status"

// modeMask covers the bits Status manages: permissions plus the
// setuid, setgid and sticky flags.
const modeMask = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// StatusOptions configures Status. Unset attributes are left
// untouched.
type StatusOptions struct {
	// Owner is the desired owner, a user name or numeric uid.
	Owner string

	// Group is the desired group, a group name or numeric gid.
	Group string

	// Mode is the desired permission bits, compared and applied under
	// modeMask.
	Mode *fs.FileMode

	// MTime is the desired modification time, compared at second
	// granularity.
	MTime *time.Time

	// KeepsState disables dry-run for this call.
	KeepsState bool
}

// Status applies owner, group, mode and mtime to an existing path and
// reports whether any attribute actually changed. It never creates the
// path. Each attribute is read before it is written, so Unchanged is
// exact: the OS call is issued only for attributes that differ.
func (r *Reconciler) Status(path string, opts StatusOptions) Outcome {
	r.reset()
	if err := paths.ValidatePath(path); err != nil {
		return r.fail(opStatus, err)
	}
	if !r.AnyExists(path) {
		return r.fail(opStatus, errors.Newf(errors.ErrPrecondition,
			"status target %s does not exist", path))
	}

	noAction := r.resolveDryRun(opts.KeepsState, opStatus, path)
	didChange, err := r.applyStatus(path, opts, noAction)
	if err != nil {
		return r.fail(opStatus, err)
	}
	if didChange {
		return changed()
	}
	return unchanged()
}

// applyStatus enforces the requested attributes on path and reports
// whether anything differed. Shared by Status and Directory.
func (r *Reconciler) applyStatus(path string, opts StatusOptions, noAction bool) (bool, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrOS, "stat %s", path)
	}

	didChange := false

	uid, gid := -1, -1
	if opts.Owner != "" {
		if uid, err = lookupUID(opts.Owner); err != nil {
			return false, err
		}
	}
	if opts.Group != "" {
		if gid, err = lookupGID(opts.Group); err != nil {
			return false, err
		}
	}
	if uid != -1 || gid != -1 {
		id, ok := filesystem.ID(info)
		if !ok {
			return false, errors.Newf(errors.ErrUnsupported,
				"ownership data unavailable for %s", path)
		}
		needChown := (uid != -1 && uid != int(id.UID)) || (gid != -1 && gid != int(id.GID))
		if needChown {
			if noAction {
				r.verbosef("status: would chown %s to %d:%d", path, uid, gid)
			} else if err := r.fs.Chown(path, uid, gid); err != nil {
				return false, errors.Wrapf(err, errors.ErrOS, "chown %s", path)
			} else {
				r.debugf("status: chowned %s to %d:%d", path, uid, gid)
			}
			didChange = true
		}
	}

	if opts.Mode != nil {
		current := info.Mode() & modeMask
		desired := *opts.Mode & modeMask
		if current != desired {
			if noAction {
				r.verbosef("status: would chmod %s from %v to %v", path, current, desired)
			} else if err := r.fs.Chmod(path, desired); err != nil {
				return false, errors.Wrapf(err, errors.ErrOS, "chmod %s", path)
			} else {
				r.debugf("status: chmodded %s from %v to %v", path, current, desired)
			}
			didChange = true
		}
	}

	if opts.MTime != nil {
		desired := *opts.MTime
		if info.ModTime().Unix() != desired.Unix() {
			if noAction {
				r.verbosef("status: would set mtime of %s to %s", path, desired)
			} else if err := r.fs.Chtimes(path, desired, desired); err != nil {
				return false, errors.Wrapf(err, errors.ErrOS, "setting mtime of %s", path)
			} else {
				r.debugf("status: set mtime of %s to %s", path, desired)
			}
			didChange = true
		}
	}

	return didChange, nil
}

// lookupUID resolves a user name or numeric uid string.
func lookupUID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrecondition, "resolving owner %q", owner)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrecondition, "non-numeric uid for %q", owner)
	}
	return uid, nil
}

// lookupGID resolves a group name or numeric gid string.
func lookupGID(group string) (int, error) {
	if gid, err := strconv.Atoi(group); err == nil {
		return gid, nil
	}
	g, err := user.LookupGroup(group)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrecondition, "resolving group %q", group)
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrecondition, "non-numeric gid for %q", group)
	}
	return gid, nil
}
