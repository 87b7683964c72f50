// Package mathutil includes important helpers for integer math.
package mathutil

import (
	"math/bits"

	"github.com/pkg/errors"
)

// ErrMulOverflow occurs when the multiplication is overflowing.
var ErrMulOverflow = errors.New("multiplication overflows")

// ErrAddOverflow occurs when the addition is overflowing.
var ErrAddOverflow = errors.New("addition overflows")

// Mul64 multiplies 2 64-bit unsigned integers and checks if they
// lead to an overflow. If they do not, it returns the result
// without an error.
func Mul64(a, b uint64) (uint64, error) {
	overflows, val := bits.Mul64(a, b)
	if overflows > 0 {
		return 0, ErrMulOverflow
	}
	return val, nil
}

// Add64 adds 2 64-bit unsigned integers and checks if they
// lead to an overflow. If they do not, it returns the result
// without an error.
func Add64(a, b uint64) (uint64, error) {
	res, carry := bits.Add64(a, b, 0 /* carry */)
	if carry > 0 {
		return 0, ErrAddOverflow
	}
	return res, nil
}

// Min returns the smaller of a and b.
func Min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
