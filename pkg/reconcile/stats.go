package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/errors"
	"go.uber.org/multierr"
)

// Stats aggregates the results of a walk over the vault
type Stats struct {
	RunID  string
	DryRun bool

	Processed int
	Modified  int
	Markers   int
	Recovered int
	Errors    int

	// Unlisted counts directories which could not be listed. They are errors, not documents
	Unlisted int

	// FieldsUpdated counts updates by field name
	FieldsUpdated map[string]int

	Failures []FileResult
}

// NewStats for a walk
func NewStats(runID string, dryRun bool) Stats {
	return Stats{
		RunID:         runID,
		DryRun:        dryRun,
		FieldsUpdated: make(map[string]int),
	}
}

// Add the result of a document
func (s *Stats) Add(r FileResult) {
	if s.FieldsUpdated == nil {
		s.FieldsUpdated = make(map[string]int)
	}
	s.Processed++
	if r.Recovered {
		s.Recovered++
	}
	switch {
	case r.Failed():
		s.Errors++
		s.Failures = append(s.Failures, r)
	case r.Marker:
		s.Markers++
	case r.Modified:
		s.Modified++
		for _, f := range r.FieldsUpdated {
			s.FieldsUpdated[f]++
		}
	}
}

// AddUnlisted records a directory which could not be listed
func (s *Stats) AddUnlisted(r FileResult) {
	s.Unlisted++
	s.Errors++
	s.Failures = append(s.Failures, r)
}

// Err combines the errors of all failures. It is nil when nothing failed
func (s Stats) Err() error {
	var err error
	for _, f := range s.Failures {
		err = multierr.Append(err, errors.New(f.Path).Wrap(f.Err))
	}
	return err
}

// Summary of the walk, on one line
func (s Stats) Summary() string {
	verb := "updated"
	if s.DryRun {
		verb = "would update"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d documents processed, %s %d, %d markers skipped, %d errors",
		s.Processed, verb, s.Modified, s.Markers, s.Errors)
	if s.Unlisted > 0 {
		fmt.Fprintf(&b, ", %d directories not listed", s.Unlisted)
	}
	if s.Recovered > 0 {
		fmt.Fprintf(&b, ", %d malformed headers recovered", s.Recovered)
	}
	if len(s.FieldsUpdated) > 0 {
		fields := make([]string, 0, len(s.FieldsUpdated))
		for f := range s.FieldsUpdated {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s=%d", f, s.FieldsUpdated[f]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}
