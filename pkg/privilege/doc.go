// Package privilege runs functions under a temporarily switched
// effective user and group, restoring the calling identity afterwards.
//
// The reconciliation engine does not switch identities itself; callers
// that need "create this as user X" wrap the engine call in a Runner.
package privilege
