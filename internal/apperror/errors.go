// Package apperror defines the error kinds surfaced by the exam, grading and
// application services: validation problems, missing records and store failures.
package apperror

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
)

// ValidationError reports a malformed request. It is raised before anything is
// persisted and collects every problem found rather than the first one.
type ValidationError struct {
	Problems *multierror.Error
}

func (e *ValidationError) Error() string {
	if e.Problems == nil || len(e.Problems.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Problems.Errors) == 1 {
		return "validation failed: " + e.Problems.Errors[0].Error()
	}
	return fmt.Sprintf("validation failed: %d problems", len(e.Problems.Errors))
}

// Details lists the individual problems, one message each.
func (e *ValidationError) Details() []string {
	if e.Problems == nil {
		return nil
	}
	details := make([]string, 0, len(e.Problems.Errors))
	for _, p := range e.Problems.Errors {
		details = append(details, p.Error())
	}
	return details
}

// Validation builds a ValidationError from a single message.
func Validation(format string, args ...any) error {
	return &ValidationError{Problems: multierror.Append(nil, fmt.Errorf(format, args...))}
}

// Problems accumulates validation problems. The zero value is ready to use.
type Problems struct {
	merr *multierror.Error
}

func (p *Problems) Add(format string, args ...any) {
	p.merr = multierror.Append(p.merr, fmt.Errorf(format, args...))
}

func (p *Problems) Empty() bool {
	return p.merr == nil || len(p.merr.Errors) == 0
}

// Err returns nil when no problem was recorded.
func (p *Problems) Err() error {
	if p.Empty() {
		return nil
	}
	return &ValidationError{Problems: p.merr}
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// PersistenceError wraps a failed store operation. The wrapped error carries a
// stack trace, printed by zerolog with %+v.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, pkgerrors.Cause(e.Err))
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: pkgerrors.WithStack(err)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// Details returns the per-problem messages of a validation error, or the error
// text itself for any other kind.
func Details(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Details()
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}
