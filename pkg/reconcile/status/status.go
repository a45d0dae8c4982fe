// Package status exports errors produced by the reconcile package.
package status

import (
	"github.com/oneconcern/vaultmon/pkg/errors"
)

var (
	// ErrInterrupted signals that a walk over the vault has been interrupted
	ErrInterrupted = errors.New("walk interrupted")

	// ErrRead indicates a document could not be read
	ErrRead = errors.New("cannot read document")

	// ErrResolve indicates the hierarchy of a document could not be resolved
	ErrResolve = errors.New("cannot resolve hierarchy")

	// ErrWrite indicates a document could not be rewritten
	ErrWrite = errors.New("cannot write document")

	// ErrNotDocument indicates that a path does not designate a vault document
	ErrNotDocument = errors.New("not a vault document")
)
