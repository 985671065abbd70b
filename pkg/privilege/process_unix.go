//go:build unix

package privilege

import (
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/logging"
)

// processRunner switches the effective uid and gid of the calling
// process. Switching away from root and back requires the real or
// saved uid to be privileged, so this only works for processes started
// with sufficient privilege.
type processRunner struct {
	logger zerolog.Logger
}

// NewProcessRunner returns a Runner backed by seteuid and setegid.
func NewProcessRunner() Runner {
	return &processRunner{
		logger: logging.GetLogger("privilege"),
	}
}

func (p *processRunner) RunAs(spec string, fn func() error) (err error) {
	uid, gid, err := Resolve(spec)
	if err != nil {
		return err
	}

	origUID := unix.Geteuid()
	origGID := unix.Getegid()
	p.logger.Debug().
		Str("spec", spec).
		Int("uid", uid).
		Int("gid", gid).
		Msg("Switching effective identity")

	// Group first: once the effective uid drops, setegid may no
	// longer be permitted.
	if gid != origGID {
		if serr := unix.Setegid(gid); serr != nil {
			return errors.Wrapf(serr, errors.ErrPrivilege, "switching effective gid to %d", gid)
		}
	}
	if uid != origUID {
		if serr := unix.Seteuid(uid); serr != nil {
			if rerr := unix.Setegid(origGID); rerr != nil {
				p.logger.Error().Err(rerr).Msg("Failed to restore effective gid")
			}
			return errors.Wrapf(serr, errors.ErrPrivilege, "switching effective uid to %d", uid)
		}
	}

	defer func() {
		// Uid first: the privileged saved uid lets the gid follow.
		if serr := unix.Seteuid(origUID); serr != nil {
			p.logger.Error().Err(serr).Int("uid", origUID).Msg("Failed to restore effective uid")
			err = joinRestoreError(err, errors.Wrapf(serr, errors.ErrPrivilege,
				"restoring effective uid %d", origUID))
		}
		if serr := unix.Setegid(origGID); serr != nil {
			p.logger.Error().Err(serr).Int("gid", origGID).Msg("Failed to restore effective gid")
			err = joinRestoreError(err, errors.Wrapf(serr, errors.ErrPrivilege,
				"restoring effective gid %d", origGID))
		}
	}()

	return fn()
}

// joinRestoreError keeps the first error; a restoration failure only
// replaces a nil one.
func joinRestoreError(existing, restore error) error {
	if existing != nil {
		return existing
	}
	return restore
}
