package testutil

import (
	"io/fs"
	"sync"
	"time"

	"github.com/pathmend/pathmend/pkg/filesystem"
)

// FaultFS wraps a filesystem.FS and injects errors into selected
// operations, so tests can exercise the engine's OS-error handling
// without manufacturing real filesystem failures.
type FaultFS struct {
	base   filesystem.FS
	mu     sync.Mutex
	faults map[string]error
}

// NewFaultFS wraps base. With no faults armed it behaves exactly like
// base.
func NewFaultFS(base filesystem.FS) *FaultFS {
	return &FaultFS{
		base:   base,
		faults: make(map[string]error),
	}
}

// FailOn arranges for every call of op to fail with err. Ops are the
// lowercase FS method names: "stat", "lstat", "readlink", "readdir",
// "readfile", "writefile", "symlink", "link", "rename", "remove",
// "removeall", "mkdirall", "mkdirtemp", "chmod", "chown", "chtimes".
func (f *FaultFS) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op] = err
}

// FailOnPath arranges for op to fail with err only for the given path.
func (f *FaultFS) FailOnPath(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+":"+path] = err
}

// Clear disarms all faults.
func (f *FaultFS) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = make(map[string]error)
}

// check returns the armed fault for op on path, path-qualified faults
// taking precedence.
func (f *FaultFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.faults[op+":"+path]; ok {
		return err
	}
	return f.faults[op]
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("stat", name); err != nil {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("lstat", name); err != nil {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.check("readlink", name); err != nil {
		return "", err
	}
	return f.base.Readlink(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.base.ReadDir(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err := f.check("readfile", name); err != nil {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check("writefile", name); err != nil {
		return err
	}
	return f.base.WriteFile(name, data, perm)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.check("symlink", newname); err != nil {
		return err
	}
	return f.base.Symlink(oldname, newname)
}

func (f *FaultFS) Link(oldname, newname string) error {
	if err := f.check("link", newname); err != nil {
		return err
	}
	return f.base.Link(oldname, newname)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.check("rename", oldpath); err != nil {
		return err
	}
	return f.base.Rename(oldpath, newpath)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.check("remove", name); err != nil {
		return err
	}
	return f.base.Remove(name)
}

func (f *FaultFS) RemoveAll(name string) error {
	if err := f.check("removeall", name); err != nil {
		return err
	}
	return f.base.RemoveAll(name)
}

func (f *FaultFS) MkdirAll(name string, perm fs.FileMode) error {
	if err := f.check("mkdirall", name); err != nil {
		return err
	}
	return f.base.MkdirAll(name, perm)
}

func (f *FaultFS) MkdirTemp(dir, pattern string) (string, error) {
	if err := f.check("mkdirtemp", dir); err != nil {
		return "", err
	}
	return f.base.MkdirTemp(dir, pattern)
}

func (f *FaultFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check("chmod", name); err != nil {
		return err
	}
	return f.base.Chmod(name, mode)
}

func (f *FaultFS) Chown(name string, uid, gid int) error {
	if err := f.check("chown", name); err != nil {
		return err
	}
	return f.base.Chown(name, uid, gid)
}

func (f *FaultFS) Chtimes(name string, atime, mtime time.Time) error {
	if err := f.check("chtimes", name); err != nil {
		return err
	}
	return f.base.Chtimes(name, atime, mtime)
}
