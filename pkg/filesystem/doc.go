// Package filesystem provides filesystem implementations for pathmend.
//
// This package defines the FS interface the reconciler operates
// against, the standard OS implementation, and helpers for reading
// platform stat data such as inode numbers and link counts.
package filesystem
