// Package stream provides iteration combinators that consume failable
// callables directly, for code that keeps explicit error returns instead of
// adapting callables with the parent package's Must* wrappers.
//
// Every combinator stops at the first failure and returns that error
// unchanged. Elements before the failing one are fully processed; elements
// after it are never visited.
package stream

import (
	"iter"

	"github.com/balinomad/go-failable"
)

// Each applies f to every element of seq in order.
// It returns the first error produced by f, or nil. Side effects of f on
// elements before a failing one remain committed.
func Each[T any](seq iter.Seq[T], f failable.Action[T]) error {
	for v := range seq {
		if err := f(v); err != nil {
			return err
		}
	}

	return nil
}

// Each2 applies f to every pair of seq in order.
// It is the pairwise counterpart of Each.
func Each2[T, K any](seq iter.Seq2[T, K], f failable.BiAction[T, K]) error {
	for t, k := range seq {
		if err := f(t, k); err != nil {
			return err
		}
	}

	return nil
}

// Map collects the results of applying f to every element of seq, in order.
// On failure it returns a nil slice and the error produced by f; results of
// elements preceding the failure are discarded.
func Map[T, R any](seq iter.Seq[T], f failable.Producer[T, R]) ([]R, error) {
	var out []R
	for v := range seq {
		r, err := f(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Map2 collects the results of applying f to every pair of seq, in order.
// It is the pairwise counterpart of Map.
func Map2[T, K, R any](seq iter.Seq2[T, K], f failable.BiProducer[T, K, R]) ([]R, error) {
	var out []R
	for t, k := range seq {
		r, err := f(t, k)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Filter returns the elements of seq retained by f, in order.
// On failure it returns a nil slice and the error produced by f.
func Filter[T any](seq iter.Seq[T], f failable.Test[T]) ([]T, error) {
	var out []T
	for v := range seq {
		ok, err := f(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Filter2 returns the pairs of seq retained by f as a map.
// On failure it returns a nil map and the error produced by f.
func Filter2[T comparable, K any](seq iter.Seq2[T, K], f failable.BiTest[T, K]) (map[T]K, error) {
	out := make(map[T]K)
	for t, k := range seq {
		ok, err := f(t, k)
		if err != nil {
			return nil, err
		}
		if ok {
			out[t] = k
		}
	}

	return out, nil
}
