// Package testutil provides test helpers for pathmend.
//
// It contains filesystem fixture helpers built on t.TempDir and a
// fault-injecting wrapper around filesystem.FS for exercising the
// engine's OS-error paths.
package testutil
