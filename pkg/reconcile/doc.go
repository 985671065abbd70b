// Package reconcile implements an idempotent filesystem state
// reconciliation engine. Each operation makes a path (file, directory,
// symlink, hardlink) match a declared target state and reports one of
// three outcomes: Failed, Unchanged, or Changed.
//
// Operations are goal-oriented. Cleanup of an absent path and Move of
// an absent source are Unchanged, not errors, because the goal state
// already holds. Changed is returned only when an observable filesystem
// difference occurred.
//
// A Reconciler carries a simulate flag. When set, mutating operations
// still perform every read (existence checks, stat) so the projected
// outcome stays accurate, but skip the OS mutation itself and report
// what would have happened through the sink. Individual calls opt out
// with KeepsState when they do not alter managed state.
//
// Destructive steps honor backup-before-destroy: when a backup suffix
// resolves, the prior contents are preserved at the derived sibling
// path before anything is removed, and a stale entry at that backup
// path is destroyed without a backup of its own.
//
// No error escapes a public operation. Failures convert to a Failed
// outcome at the operation boundary and are recorded in the
// reconciler's failure slot, retrievable via LastFailure.
package reconcile
