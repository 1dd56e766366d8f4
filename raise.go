package failable

// raisedError carries an error raised by a wrapped callable through the
// stack, so that Catch can tell raises made by this package apart from
// unrelated panics.
type raisedError struct {
	err error
}

// raise propagates err up the stack unchanged. All wrappers funnel their
// failures through here.
func raise(err error) {
	panic(raisedError{err: err})
}

// Catch invokes fn and returns the error raised by a wrapped callable
// inside it, or nil if fn completes normally.
//
// The returned error is the exact value the failing callable produced, with
// no wrapping or translation, so errors.Is and errors.As behave the same as
// they would on the callable's own return value. Panics that did not
// originate from a wrapper in this package propagate unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case raisedError:
			err = r.err
		default:
			panic(r)
		}
	}()
	fn()

	return nil
}

// CatchValue invokes fn and returns its result, or the zero value together
// with the error raised by a wrapped callable inside fn.
// It is the value-producing counterpart of Catch.
func CatchValue[R any](fn func() R) (v R, err error) {
	err = Catch(func() { v = fn() })

	return v, err
}
