package reconcile

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/paths"
)

const opListDir = "listdir"

// ListDirOptions configures ListDir. Test, Filter/Pattern and
// FileExists compose as an AND; Inverse inverts that combination.
type ListDirOptions struct {
	// Test keeps entries for which it returns true. It runs first,
	// during the directory scan.
	Test func(name string) bool

	// Filter keeps entries whose name matches this expression, given
	// as a pattern string. Ignored when Pattern is set.
	Filter string

	// Pattern keeps entries whose name matches this pre-compiled
	// expression.
	Pattern *regexp.Regexp

	// FileExists keeps entries that exist as regular files under dir.
	FileExists bool

	// Inverse keeps the entries the combined conditions rejected.
	Inverse bool

	// AddDir prefixes each result with the directory path.
	AddDir bool
}

// ListDir enumerates dir and returns the matching names in sorted
// order, or full paths under AddDir. It fails when dir is not an
// existing directory or the scan itself fails. The . and .. entries
// never appear, regardless of Inverse.
func (r *Reconciler) ListDir(dir string, opts ListDirOptions) ([]string, error) {
	r.reset()
	if err := paths.ValidatePath(dir); err != nil {
		return nil, r.failErr(opListDir, err)
	}
	if !r.DirectoryExists(dir) {
		return nil, r.failErr(opListDir, errors.Newf(errors.ErrPrecondition,
			"%s is not a directory", dir))
	}

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, r.failErr(opListDir, errors.Wrapf(err, errors.ErrOS,
			"reading directory %s", dir))
	}

	pattern := opts.Pattern
	if pattern == nil && opts.Filter != "" {
		if pattern, err = regexp.Compile(opts.Filter); err != nil {
			return nil, r.failErr(opListDir, errors.Wrapf(err, errors.ErrValidation,
				"compiling filter %q", opts.Filter))
		}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		keep := true
		if opts.Test != nil {
			keep = opts.Test(name)
		}
		if keep && pattern != nil {
			keep = pattern.MatchString(name)
		}
		if keep && opts.FileExists {
			keep = r.FileExists(filepath.Join(dir, name))
		}
		if opts.Inverse {
			keep = !keep
		}
		if keep {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	if opts.AddDir {
		for i, name := range names {
			names[i] = filepath.Join(dir, name)
		}
	}

	r.tracef("listdir: %s matched %d of %d entries", dir, len(names), len(entries))
	return names, nil
}
