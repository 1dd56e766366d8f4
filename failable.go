// Package failable provides adapters between error-returning callables and
// the plain callable shapes expected by generic higher-order code.
//
// Many generic utilities accept a callback with a fixed shape, such as
// func(T) or func(T) R, leaving no room for an error result. A function that
// naturally can fail cannot be passed to them directly. The Must* wrappers
// in this package close that gap: they turn an error-returning callable into
// the matching plain shape, and if the inner callable fails, the original
// error is raised through the call stack and recovered, unchanged, by a
// Catch boundary placed around the higher-order call. E.g.
//
//	err := failable.Catch(func() {
//		for _, name := range names {
//			open(name) // open is failable.MustAction(openFile)
//		}
//	})
//
// The error returned by Catch is the exact value the inner callable
// produced. The wrappers never wrap, translate, log, retry, or suppress a
// failure, and they add no state of their own: a wrapped callable is as safe
// for concurrent use as the callable it wraps.
//
// Code that keeps explicit error returns end to end does not need the
// wrappers at all; the stream subpackage offers Each, Map and Filter
// combinators that consume these failable shapes directly.
package failable

// Action is a single-argument callable that may fail.
type Action[T any] func(T) error

// BiAction is a two-argument callable that may fail.
type BiAction[T, K any] func(T, K) error

// Producer is a single-argument, value-producing callable that may fail.
type Producer[T, R any] func(T) (R, error)

// BiProducer is a two-argument, value-producing callable that may fail.
type BiProducer[T, K, R any] func(T, K) (R, error)

// Supplier is a zero-argument, value-producing callable that may fail.
type Supplier[R any] func() (R, error)

// Test is a single-argument predicate that may fail.
type Test[T any] func(T) (bool, error)

// BiTest is a two-argument predicate that may fail.
type BiTest[T, K any] func(T, K) (bool, error)
