package reconcile

// resolveDryRun decides whether the mutation of op on path is skipped.
// KeepsState wins: a call that declares it preserves managed state runs
// even in simulate mode. Otherwise the instance flag governs. When the
// mutation is skipped, the operation must still perform its reads so
// the projected outcome stays accurate.
func (r *Reconciler) resolveDryRun(keepsState bool, op, path string) bool {
	if keepsState {
		r.tracef("%s: call keeps state, dry-run disabled for %s", op, path)
		return false
	}
	if r.simulate {
		r.tracef("%s: simulate mode, skipping mutation of %s", op, path)
		return true
	}
	return false
}
