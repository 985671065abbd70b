package filesystem

import (
	"io/fs"
	"time"
)

// FS abstracts the filesystem operations the reconciler performs.
// The default implementation is the real OS filesystem via NewOS;
// tests substitute implementations that inject faults.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Lstat returns file info without following symlinks.
	Lstat(name string) (fs.FileInfo, error)
	// Readlink returns the destination of a symlink.
	Readlink(name string) (string, error)
	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)
	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)
	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error
	// Link creates newname as a hard link to oldname.
	Link(oldname, newname string) error
	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
	// Remove removes the named file or empty directory.
	Remove(name string) error
	// RemoveAll removes name and any children it contains.
	RemoveAll(name string) error
	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(name string, perm fs.FileMode) error
	// MkdirTemp creates a new unique temporary directory under dir
	// with a name built from pattern and returns its path.
	MkdirTemp(dir, pattern string) (string, error)
	// Chmod changes the mode of the named file.
	Chmod(name string, mode fs.FileMode) error
	// Chown changes the owner and group of the named file. A uid or
	// gid of -1 leaves that value unchanged.
	Chown(name string, uid, gid int) error
	// Chtimes changes the access and modification times of the file.
	Chtimes(name string, atime, mtime time.Time) error
}
