// Package calm allows users to call a function and capture any panic as an
// error with stack trace instead.
package calm

import (
	"fmt"

	"github.com/lijunyuCN/go-lazyseq/xerrors"
	"github.com/lijunyuCN/go-lazyseq/xerrors/errclass"
	"github.com/lijunyuCN/go-lazyseq/xerrors/stacktrace"
)

const (
	// depth of stack to ignore so that the stack trace from recovered panic
	// does not include the deferred recovery function itself.
	panicStackDepth = 3
)

// Unpanic executes the given function catching any panic and returning it as
// an error. A panic value that is already a classified error (such as a
// collection navigation misuse) is passed through with its class and stack
// trace intact; anything else is wrapped as errclass.Panic with a stack trace
// captured here.
// WARNING: It is not possible to recover from a panic in a goroutine spawned
// by `f()`. Users should ensure that any goroutines created by `f()` are
// likewise guarded against panics.
func Unpanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if classified, ok := r.(error); ok && errclass.GetClass(classified) > errclass.Unknown {
				err = classified
				return
			}
			r := fmt.Errorf("panic: %v", r)
			r = xerrors.Extend(stacktrace.GetStack(panicStackDepth, true), r)
			err = errclass.WrapAs(r, errclass.Panic)
		}
	}()

	return f()
}
