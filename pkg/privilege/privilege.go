package privilege

import (
	"os/user"
	"strconv"
	"strings"

	"github.com/pathmend/pathmend/pkg/errors"
)

// Runner executes a function with a switched effective identity.
type Runner interface {
	// RunAs runs fn with the effective uid and gid described by spec,
	// restoring the calling identity before returning, whether fn
	// succeeded or failed.
	RunAs(spec string, fn func() error) error
}

// Resolve parses an identity spec of the form "user" or "user:group",
// where both parts accept names or numeric ids. Without a group part,
// the user's primary group is used.
func Resolve(spec string) (uid, gid int, err error) {
	if spec == "" {
		return -1, -1, errors.New(errors.ErrValidation, "identity spec cannot be empty")
	}

	userPart := spec
	groupPart := ""
	if idx := strings.IndexByte(spec, ':'); idx >= 0 {
		userPart = spec[:idx]
		groupPart = spec[idx+1:]
	}
	if userPart == "" {
		return -1, -1, errors.Newf(errors.ErrValidation, "identity spec %q has no user part", spec)
	}

	uid, primaryGID, err := resolveUser(userPart)
	if err != nil {
		return -1, -1, err
	}

	if groupPart == "" {
		return uid, primaryGID, nil
	}
	gid, err = resolveGroup(groupPart)
	if err != nil {
		return -1, -1, err
	}
	return uid, gid, nil
}

// resolveUser returns the uid and primary gid for a user name or
// numeric uid.
func resolveUser(name string) (int, int, error) {
	if uid, err := strconv.Atoi(name); err == nil {
		// Numeric uids resolve through the user database only to find
		// the primary group; an unknown uid falls back to gid == uid.
		if u, err := user.LookupId(name); err == nil {
			if gid, err := strconv.Atoi(u.Gid); err == nil {
				return uid, gid, nil
			}
		}
		return uid, uid, nil
	}

	u, err := user.Lookup(name)
	if err != nil {
		return -1, -1, errors.Wrapf(err, errors.ErrPrivilege, "resolving user %q", name)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return -1, -1, errors.Wrapf(err, errors.ErrPrivilege, "non-numeric uid for %q", name)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return -1, -1, errors.Wrapf(err, errors.ErrPrivilege, "non-numeric gid for %q", name)
	}
	return uid, gid, nil
}

// resolveGroup returns the gid for a group name or numeric gid.
func resolveGroup(name string) (int, error) {
	if gid, err := strconv.Atoi(name); err == nil {
		return gid, nil
	}
	g, err := user.LookupGroup(name)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrivilege, "resolving group %q", name)
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrPrivilege, "non-numeric gid for %q", name)
	}
	return gid, nil
}
