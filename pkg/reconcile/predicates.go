package reconcile

import (
	"io/fs"
	"path/filepath"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/filesystem"
	"github.com/pathmend/pathmend/pkg/paths"
)

const (
	opHasHardlinks = "hashardlinks"
	opIsHardlink   = "ishardlink"
)

// DirectoryExists reports whether path is an existing directory,
// following symlinks. An empty path and read errors yield false.
func (r *Reconciler) DirectoryExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path is an existing regular file,
// following symlinks. An empty path and read errors yield false.
func (r *Reconciler) FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// AnyExists reports whether anything exists at path, without following
// symlinks. A broken symlink exists. An empty path yields false.
func (r *Reconciler) AnyExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := r.fs.Lstat(path)
	return err == nil
}

// IsSymlink reports whether path is a symlink, broken or not.
// An empty path yields false.
func (r *Reconciler) IsSymlink(path string) bool {
	if path == "" {
		return false
	}
	info, err := r.fs.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// HasHardlinks returns the number of additional hard links to path:
// the link count minus one, so 0 means not hard-linked. It fails when
// path is not an existing regular file or symlink.
func (r *Reconciler) HasHardlinks(path string) (int, error) {
	r.reset()
	if err := paths.ValidatePath(path); err != nil {
		return 0, r.failErr(opHasHardlinks, err)
	}
	info, err := r.fs.Lstat(path)
	if err != nil {
		return 0, r.failErr(opHasHardlinks, errors.Wrapf(err, errors.ErrPrecondition, "inspecting %s", path))
	}
	if !info.Mode().IsRegular() && info.Mode()&fs.ModeSymlink == 0 {
		return 0, r.failErr(opHasHardlinks, errors.Newf(errors.ErrPrecondition,
			"%s is not a file or symlink", path))
	}
	id, ok := filesystem.ID(info)
	if !ok {
		return 0, r.failErr(opHasHardlinks, errors.Newf(errors.ErrUnsupported,
			"link count unavailable for %s", path))
	}
	return int(id.Nlink) - 1, nil
}

// IsHardlink reports whether a and b are hard links to the same file:
// distinct paths backed by one inode on one device. The identical path
// given twice is not a hardlink. It fails when either path does not
// exist.
func (r *Reconciler) IsHardlink(a, b string) (bool, error) {
	r.reset()
	if err := paths.ValidatePath(a); err != nil {
		return false, r.failErr(opIsHardlink, err)
	}
	if err := paths.ValidatePath(b); err != nil {
		return false, r.failErr(opIsHardlink, err)
	}
	ia, err := r.fs.Lstat(a)
	if err != nil {
		return false, r.failErr(opIsHardlink, errors.Wrapf(err, errors.ErrPrecondition, "inspecting %s", a))
	}
	ib, err := r.fs.Lstat(b)
	if err != nil {
		return false, r.failErr(opIsHardlink, errors.Wrapf(err, errors.ErrPrecondition, "inspecting %s", b))
	}
	// The same path twice trivially shares an inode; that is not a
	// hardlink pair.
	if filepath.Clean(a) == filepath.Clean(b) {
		return false, nil
	}
	return filesystem.SameFile(ia, ib), nil
}
