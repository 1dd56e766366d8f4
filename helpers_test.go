package failable_test

import (
	"errors"
	"fmt"
)

// errNilValue is the failure most fixtures produce. Tests assert that this
// exact value survives the wrap/raise/catch round trip.
var errNilValue = errors.New("value is nil")

// parseError is a concrete error type for errors.As round-trip checks.
type parseError struct {
	input string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("cannot parse %q", e.input)
}

// ptr returns a pointer to v.
func ptr[T any](v T) *T {
	return &v
}

// checkValue fails on nil input and does nothing otherwise.
func checkValue(s *string) error {
	if s == nil {
		return errNilValue
	}
	return nil
}

// checkPair fails when either input is nil.
func checkPair(s, v *string) error {
	if s == nil || v == nil {
		return errNilValue
	}
	return nil
}

// length reports the length of the referenced string and fails on nil.
func length(s *string) (int, error) {
	if s == nil {
		return 0, errNilValue
	}
	return len(*s), nil
}

// notEmpty reports whether the referenced string is non-empty and fails on nil.
func notEmpty(s *string) (bool, error) {
	if s == nil {
		return false, errNilValue
	}
	return *s != "", nil
}

// accumulator stands in for side-effecting sequence processing.
// A nil value fails without touching the sum, so tests can observe exactly
// how much of a sequence was processed before the failure.
type accumulator struct {
	sum int64
}

func (a *accumulator) add(v *int64) error {
	if v == nil {
		return errNilValue
	}
	a.sum += *v
	return nil
}

func (a *accumulator) addPair(v, w *int64) error {
	if v == nil || w == nil {
		return errNilValue
	}
	a.sum += *v + *w
	return nil
}

// counter is a stateful supplier. It advances on every call, including
// failing ones, and fails exactly when the count reaches 2.
type counter struct {
	n int
}

func (c *counter) next() (int, error) {
	c.n++
	if c.n == 2 {
		return 0, errNilValue
	}
	return c.n, nil
}
