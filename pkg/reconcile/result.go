package reconcile

import (
	"fmt"

	"github.com/oneconcern/vaultmon/pkg/errors"
	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/oneconcern/vaultmon/pkg/reconcile/status"
)

// Category classifies the failure of a document
type Category string

// Failure categories
const (
	CategoryNone        Category = ""
	CategoryRead        Category = "read"
	CategoryResolve     Category = "resolve"
	CategoryWrite       Category = "write"
	CategoryInterrupted Category = "interrupted"
)

// CategoryOf maps an error to its category
func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, status.ErrRead), errors.Is(err, status.ErrNotDocument):
		return CategoryRead
	case errors.Is(err, status.ErrResolve):
		return CategoryResolve
	case errors.Is(err, status.ErrInterrupted):
		return CategoryInterrupted
	default:
		return CategoryWrite
	}
}

// FileResult is the outcome of the reconciliation of one document
type FileResult struct {
	Path string

	// Modified is true when the header was, or in dry-run mode would have been, rewritten
	Modified      bool
	FieldsUpdated []string
	DryRun        bool

	// Marker documents are never modified
	Marker bool

	// Recovered is true when the header had to be recovered from a malformed block
	Recovered bool

	Info hierarchy.Info

	Err      error
	Category Category
}

func (r *FileResult) fail(err error) FileResult {
	r.Err = err
	r.Category = CategoryOf(err)
	r.Modified = false
	r.FieldsUpdated = nil
	return *r
}

// Failed reconciliation?
func (r FileResult) Failed() bool {
	return r.Err != nil
}

func (r FileResult) String() string {
	switch {
	case r.Failed():
		return fmt.Sprintf("%s: error (%s): %v", r.Path, r.Category, r.Err)
	case r.Marker:
		return fmt.Sprintf("%s: marker, skipped", r.Path)
	case r.Modified && r.DryRun:
		return fmt.Sprintf("%s: would update %v", r.Path, r.FieldsUpdated)
	case r.Modified:
		return fmt.Sprintf("%s: updated %v", r.Path, r.FieldsUpdated)
	default:
		return fmt.Sprintf("%s: up to date", r.Path)
	}
}
