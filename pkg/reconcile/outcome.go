package reconcile

// State classifies the result of a reconciliation operation.
type State string

const (
	// StateFailed means the operation could not reach the target state.
	StateFailed State = "failed"
	// StateUnchanged means the target state already held.
	StateUnchanged State = "unchanged"
	// StateChanged means the filesystem was altered to reach the
	// target state.
	StateChanged State = "changed"
)

// Outcome is the tri-state result of a reconciliation operation.
// Unchanged and Changed are both success; callers that trigger
// follow-up work (restart a service, re-run a hook) branch on Changed.
type Outcome struct {
	// State is the tri-state classification.
	State State
	// Path is the resolved path payload. Only Directory sets it, where
	// the final path can differ from the requested one (temporary
	// directory templates).
	Path string
	// Err carries the failure. Set if and only if State is StateFailed.
	Err error
}

// Ok reports whether the operation succeeded, regardless of whether
// anything changed.
func (o Outcome) Ok() bool {
	return o.State != StateFailed
}

// Changed reports whether the operation altered the filesystem.
func (o Outcome) Changed() bool {
	return o.State == StateChanged
}

func unchanged() Outcome {
	return Outcome{State: StateUnchanged}
}

func changed() Outcome {
	return Outcome{State: StateChanged}
}
