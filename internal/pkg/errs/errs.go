// Package errs narrows the cockroachdb/errors surface to the three
// operations the rest of the service relies on: wrapping with context,
// creating sentinels, and marking an error with a sentinel so errors.Is
// matches it later.
package errs

import "github.com/cockroachdb/errors"

// Wrap annotates err with msg, preserving the original stack. Returns nil
// when err is nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// New creates a sentinel error. Used for package-level error values that
// handlers match with errors.Is.
func New(msg string) error {
	return errors.New(msg)
}

// Mark makes err match markErr under errors.Is without losing err's own
// message or stack. A nil err degrades to the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return errors.Mark(err, markErr)
}
