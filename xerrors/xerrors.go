// Package xerrors provides generic error wrapping, allowing a value of any
// type to travel alongside an error and be recovered later.
package xerrors

import "errors"

// ExtendedError carries additional typed data on top of an underlying error.
type ExtendedError[T any] struct {
	Data T
	err  error
}

// Error returns the message of the underlying error.
func (e ExtendedError[T]) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying wrapped error.
func (e ExtendedError[T]) Unwrap() error {
	return e.err
}

// Extend wraps err with the given data. Extending nil is nil.
func Extend[T any](data T, err error) error {
	if err == nil {
		return nil
	}
	return ExtendedError[T]{Data: data, err: err}
}

// Extract recovers data of type T from anywhere in the wrap chain.
// If err was extended with the same type more than once, the outermost
// match wins.
func Extract[T any](err error) (T, bool) {
	var extended ExtendedError[T]
	ok := errors.As(err, &extended)
	return extended.Data, ok
}

// Unjoin returns the direct children of an error built with errors.Join,
// or the error itself as a single-element slice.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
