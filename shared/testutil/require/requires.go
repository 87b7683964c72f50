// Package require defines failing test assertions.
package require

import (
	"github.com/halcyon-eth/halcyon/shared/testutil"
)

// Equal compares values using comparison operator.
func Equal(tb testutil.AssertionTestingTB, expected, actual interface{}, msg ...interface{}) {
	testutil.Equal(tb.Fatalf, expected, actual, msg...)
}

// NotEqual compares values using comparison operator.
func NotEqual(tb testutil.AssertionTestingTB, expected, actual interface{}, msg ...interface{}) {
	testutil.NotEqual(tb.Fatalf, expected, actual, msg...)
}

// DeepEqual compares values using DeepEqual.
func DeepEqual(tb testutil.AssertionTestingTB, expected, actual interface{}, msg ...interface{}) {
	testutil.DeepEqual(tb.Fatalf, expected, actual, msg...)
}

// NoError asserts that error is nil.
func NoError(tb testutil.AssertionTestingTB, err error, msg ...interface{}) {
	testutil.NoError(tb.Fatalf, err, msg...)
}

// ErrorContains asserts that actual error contains wanted message.
func ErrorContains(tb testutil.AssertionTestingTB, want string, err error, msg ...interface{}) {
	testutil.ErrorContains(tb.Fatalf, want, err, msg...)
}

// NotNil asserts that passed value is not nil.
func NotNil(tb testutil.AssertionTestingTB, obj interface{}, msg ...interface{}) {
	testutil.NotNil(tb.Fatalf, obj, msg...)
}
