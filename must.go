package failable

// MustAction adapts a failable single-argument callable to a plain func(T).
// A failure of f is raised unchanged and can be recovered by a surrounding
// Catch. E.g.
//
//	walk(names, failable.MustAction(register))
func MustAction[T any](f Action[T]) func(T) {
	return func(t T) {
		if err := f(t); err != nil {
			raise(err)
		}
	}
}

// MustBiAction adapts a failable two-argument callable to a plain func(T, K).
func MustBiAction[T, K any](f BiAction[T, K]) func(T, K) {
	return func(t T, k K) {
		if err := f(t, k); err != nil {
			raise(err)
		}
	}
}

// MustProducer adapts a failable value-producing callable to a plain
// func(T) R. On success the produced value is returned unchanged; a failure
// of f is raised unchanged. E.g.
//
//	sizes := transform(names, failable.MustProducer(fileSize))
func MustProducer[T, R any](f Producer[T, R]) func(T) R {
	return func(t T) R {
		r, err := f(t)
		if err != nil {
			raise(err)
		}

		return r
	}
}

// MustBiProducer adapts a failable two-argument, value-producing callable
// to a plain func(T, K) R.
func MustBiProducer[T, K, R any](f BiProducer[T, K, R]) func(T, K) R {
	return func(t T, k K) R {
		r, err := f(t, k)
		if err != nil {
			raise(err)
		}

		return r
	}
}

// MustSupplier adapts a failable zero-argument, value-producing callable to
// a plain func() R. The supplier is invoked anew on every call, so state it
// depends on advances exactly as it would without the wrapper, including on
// failing calls.
func MustSupplier[R any](f Supplier[R]) func() R {
	return func() R {
		r, err := f()
		if err != nil {
			raise(err)
		}

		return r
	}
}

// MustTest adapts a failable predicate to a plain func(T) bool. E.g.
//
//	active := keep(sessions, failable.MustTest(isActive))
func MustTest[T any](f Test[T]) func(T) bool {
	return func(t T) bool {
		ok, err := f(t)
		if err != nil {
			raise(err)
		}

		return ok
	}
}

// MustBiTest adapts a failable two-argument predicate to a plain
// func(T, K) bool.
func MustBiTest[T, K any](f BiTest[T, K]) func(T, K) bool {
	return func(t T, k K) bool {
		ok, err := f(t, k)
		if err != nil {
			raise(err)
		}

		return ok
	}
}

// Must returns v if err is nil and raises err otherwise. It adapts a single
// already-evaluated (value, error) pair rather than a callable:
//
//	u := failable.Must(url.Parse(raw))
func Must[R any](v R, err error) R {
	if err != nil {
		raise(err)
	}

	return v
}

// Must0 raises err if it is non-nil. It is the result-free counterpart of
// Must.
func Must0(err error) {
	if err != nil {
		raise(err)
	}
}
