//go:build unix

package filesystem

import (
	"errors"
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

// FileID is the platform identity of a file: the device and inode
// pair that distinguishes it, the number of hard links to it, and
// its ownership.
type FileID struct {
	Dev   uint64
	Ino   uint64
	Nlink uint64
	UID   uint32
	GID   uint32
}

// ID extracts the platform identity from a FileInfo. It returns
// false when the info does not carry platform stat data, which
// happens with synthetic FileInfo values from test filesystems.
func ID(info fs.FileInfo) (FileID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return FileID{}, false
	}
	return FileID{
		Dev:   uint64(st.Dev),
		Ino:   uint64(st.Ino),
		Nlink: uint64(st.Nlink),
		UID:   st.Uid,
		GID:   st.Gid,
	}, true
}

// SameFile reports whether two FileInfo values refer to the same
// underlying file, by device and inode.
func SameFile(a, b fs.FileInfo) bool {
	ida, oka := ID(a)
	idb, okb := ID(b)
	if !oka || !okb {
		return false
	}
	return ida.Dev == idb.Dev && ida.Ino == idb.Ino
}

// IsCrossDevice reports whether err is the EXDEV error the kernel
// returns when a rename or link crosses filesystem boundaries.
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
