package reconcile

import (
	"io/fs"
	"os"
	"time"

	"github.com/pathmend/pathmend/pkg/filesystem"
)

// Sink receives the engine's leveled progress messages. Calls are
// fire-and-forget; implementations must not block on the caller.
// pkg/logging provides the zerolog-backed implementation.
type Sink interface {
	Trace(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Verbose(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Options configures a Reconciler.
type Options struct {
	// FS is the filesystem the reconciler operates on. Nil selects the
	// real OS filesystem.
	FS filesystem.FS

	// Sink receives progress and failure messages. Nil is legal and
	// silences the reconciler.
	Sink Sink

	// Simulate puts the instance in dry-run mode: mutating operations
	// perform their reads but skip the OS mutation, unless a call sets
	// KeepsState.
	Simulate bool

	// BackupSuffix is the instance default used to derive backup paths
	// before destructive steps. Empty means no backup by default.
	// Calls override it through their Backup option.
	BackupSuffix string
}

// Reconciler makes filesystem paths match declared target state.
// Instances are cheap and hold no filesystem handles between calls.
// A Reconciler is single-writer: the failure slot is overwritten by
// each fallible call, so concurrent reconciliations need one instance
// per task or external locking.
type Reconciler struct {
	fs           filesystem.FS
	sink         Sink
	simulate     bool
	backupSuffix string
	lastFailure  error
}

// New creates a Reconciler from opts.
func New(opts Options) *Reconciler {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Reconciler{
		fs:           fsys,
		sink:         opts.Sink,
		simulate:     opts.Simulate,
		backupSuffix: opts.BackupSuffix,
	}
}

// Simulate reports whether the instance is in dry-run mode.
func (r *Reconciler) Simulate() bool {
	return r.simulate
}

// LastFailure returns the failure recorded by the most recent fallible
// operation, or nil when it succeeded. Boolean predicates never touch
// the slot.
func (r *Reconciler) LastFailure() error {
	return r.lastFailure
}

// reset clears the failure slot. Every fallible public operation calls
// it first.
func (r *Reconciler) reset() {
	r.lastFailure = nil
}

// fail is the error-to-outcome boundary: it records the failure, emits
// it through the sink, and returns the Failed outcome. No error leaves
// a public operation any other way.
func (r *Reconciler) fail(op string, err error) Outcome {
	r.lastFailure = err
	r.errorf("%s: %v", op, err)
	return Outcome{State: StateFailed, Err: err}
}

// failErr is the boundary for operations returning a plain error
// (ListDir, hardlink inspection) instead of an Outcome.
func (r *Reconciler) failErr(op string, err error) error {
	r.lastFailure = err
	r.errorf("%s: %v", op, err)
	return err
}

// resolveBackup returns the effective backup suffix: the call option
// when set, else the instance default. An explicit empty string in the
// option disables backup even when a default is configured.
func (r *Reconciler) resolveBackup(opt *string) string {
	if opt != nil {
		return *opt
	}
	return r.backupSuffix
}

// removeAny removes path, recursively when it is a real directory.
// An already-absent path is not an error.
func (r *Reconciler) removeAny(path string) error {
	info, err := r.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return r.fs.RemoveAll(path)
	}
	return r.fs.Remove(path)
}

func (r *Reconciler) tracef(format string, args ...interface{}) {
	if r.sink != nil {
		r.sink.Trace(format, args...)
	}
}

func (r *Reconciler) debugf(format string, args ...interface{}) {
	if r.sink != nil {
		r.sink.Debug(format, args...)
	}
}

func (r *Reconciler) verbosef(format string, args ...interface{}) {
	if r.sink != nil {
		r.sink.Verbose(format, args...)
	}
}

func (r *Reconciler) errorf(format string, args ...interface{}) {
	if r.sink != nil {
		r.sink.Error(format, args...)
	}
}

// String returns a pointer to v, for options taking *string.
func String(v string) *string {
	return &v
}

// Mode returns a pointer to m, for options taking *fs.FileMode.
func Mode(m fs.FileMode) *fs.FileMode {
	return &m
}

// Time returns a pointer to t, for options taking *time.Time.
func Time(t time.Time) *time.Time {
	return &t
}
