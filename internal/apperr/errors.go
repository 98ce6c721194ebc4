// Package apperr defines sentinel errors for the failure taxonomy of a run.
package apperr

import "errors"

var (
	// ErrDiscovery marks a failed vault enumeration. Always fatal.
	ErrDiscovery = errors.New("discovery failed")
	// ErrRead marks a document that could not be read. Aborts the run.
	ErrRead = errors.New("read failed")
	// ErrWrite marks a document that could not be rewritten. Collected per
	// document and reported at end of run.
	ErrWrite = errors.New("write failed")
)
