package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a page, block or category does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned for malformed input before any write happens.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when a mutating call lacks an admin credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is returned when an update collides with current state, e.g. a duplicate slug.
	ErrConflict = errors.New("conflict")
)

// RecordFailure is one failed record inside a batch run.
type RecordFailure struct {
	ID  string
	Err error
}

// PartialBatchFailure reports records that failed during a bulk
// normalization or reindexing pass. The batch itself ran to completion;
// only the listed records were skipped.
type PartialBatchFailure struct {
	Failures []RecordFailure
}

func (e *PartialBatchFailure) Error() string {
	ids := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.ID)
	}
	return fmt.Sprintf("batch completed with %d failed records: %s", len(e.Failures), strings.Join(ids, ", "))
}

// Add records a failed record and returns the receiver, allocating it on
// first use so callers can keep a nil *PartialBatchFailure for the happy path.
func (e *PartialBatchFailure) Add(id string, err error) *PartialBatchFailure {
	if e == nil {
		e = &PartialBatchFailure{}
	}
	e.Failures = append(e.Failures, RecordFailure{ID: id, Err: err})
	return e
}

// OrNil converts an empty failure set to a nil error.
func (e *PartialBatchFailure) OrNil() error {
	if e == nil || len(e.Failures) == 0 {
		return nil
	}
	return e
}
