package filesystem

import (
	"io/fs"
	"os"
	"time"
)

// osFS implements FS using the real OS filesystem.
type osFS struct{}

// NewOS returns an FS backed by the operating system.
func NewOS() FS {
	return &osFS{}
}

func (f *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (f *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (f *osFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (f *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (f *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (f *osFS) Link(oldname, newname string) error {
	return os.Link(oldname, newname)
}

func (f *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (f *osFS) Remove(name string) error {
	return os.Remove(name)
}

func (f *osFS) RemoveAll(name string) error {
	return os.RemoveAll(name)
}

func (f *osFS) MkdirAll(name string, perm fs.FileMode) error {
	return os.MkdirAll(name, perm)
}

func (f *osFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (f *osFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

func (f *osFS) Chown(name string, uid, gid int) error {
	return os.Chown(name, uid, gid)
}

func (f *osFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
