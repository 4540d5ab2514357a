package bignum

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the narrow set of failures this package
// can report. Every error returned from an exported method wraps one of
// these via %w, so callers test for a kind with errors.Is rather than by
// comparing strings:
//
//	_, err := new(Natural).Sub(x, y)
//	if errors.Is(err, bignum.ErrRangeError) { ... }
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivideByZero    = errors.New("divide by zero")
	ErrNotANumber      = errors.New("not a number")
	ErrOverflow        = errors.New("overflow")
	ErrUnderflow       = errors.New("underflow")
	ErrRangeError      = errors.New("range error")
)

// opError builds the error value returned by a failing operation. All
// errors are reported synchronously at the operation that detected them;
// the convention throughout this package is that a failing operation
// leaves its receiver unchanged, so there is nothing to roll back here.
func opError(op string, kind error, detail string) error {
	if detail == "" {
		return fmt.Errorf("bignum: %s: %w", op, kind)
	}
	return fmt.Errorf("bignum: %s: %w: %s", op, kind, detail)
}
