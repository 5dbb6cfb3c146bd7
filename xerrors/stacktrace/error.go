package stacktrace

import (
	"github.com/lijunyuCN/go-lazyseq/xerrors"
)

const (
	// depth of stack to ignore so that callers of Wrap don't see the call to Wrap itself.
	wrapStackDepth = 3
)

// Wrap extends an error by including a stack trace at the point where this
// was called. If the error already carries a stack trace, it is returned
// unchanged. Wrapping nil is nil.
func Wrap(err error) error {
	if err == nil {
		return err
	}
	if _, ok := xerrors.Extract[StackTrace](err); ok {
		return err
	}
	return xerrors.Extend(GetStack(wrapStackDepth, true), err)
}

// Extract returns the StackTrace embedded in the error if it exists.
func Extract(err error) StackTrace {
	st, ok := xerrors.Extract[StackTrace](err)
	if !ok {
		return nil
	}
	return st
}
