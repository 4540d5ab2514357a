package bignum

import (
	"fmt"
	"io"
	"strings"
)

// ParseRational parses s as an Integer, optionally followed by "/" and a
// Natural denominator (e.g. "3", "-3", "3/4", "-3/4"). A bare integer is
// parsed as having denominator 1. The result is reduced to lowest terms.
func ParseRational(s string) (*Rational, error) {
	return new(Rational).SetString(s)
}

// SetString parses s under the ParseRational grammar and, on success,
// sets z to the result and returns (z, nil). On failure z is left
// unchanged and the returned error wraps ErrInvalidArgument or
// ErrDivideByZero (a zero denominator).
func (z *Rational) SetString(s string) (*Rational, error) {
	if s == "" {
		return z, opError("Rational.SetString", ErrInvalidArgument, "empty input")
	}

	numPart, denomPart, hasDenom := strings.Cut(s, "/")

	var num Integer
	if _, err := num.SetString(numPart); err != nil {
		return z, opError("Rational.SetString", ErrInvalidArgument, err.Error())
	}

	denom := new(Integer).SetInt64(1)
	if hasDenom {
		var d Natural
		if _, err := d.SetString(denomPart); err != nil {
			return z, opError("Rational.SetString", ErrInvalidArgument, err.Error())
		}
		denom.SetNatural(&d)
	}

	if denom.IsZero() {
		return z, opError("Rational.SetString", ErrDivideByZero, "")
	}

	z.num.Set(&num)
	z.denom.Set(denom)
	if err := z.normalize(); err != nil {
		return z, err
	}
	return z, nil
}

// String renders x in decimal as "num/denom", always including the
// denominator (so 0 renders as "0/1", and an integer value such as 3
// renders as "3/1").
func (x *Rational) String() string {
	return x.Text(Decimal)
}

// Text renders x under the given FormatSpec, applied independently to
// the numerator and denominator, always as "num/denom".
func (x *Rational) Text(spec FormatSpec) string {
	return x.num.Text(spec) + "/" + x.denom.Text(spec)
}

// Format implements fmt.Formatter, mirroring Integer.Format.
func (x *Rational) Format(f fmt.State, verb rune) {
	spec := FormatSpec{ShowBase: f.Flag('#')}
	switch verb {
	case 'd', 'v', 's':
		spec.Base = 10
	case 'o':
		spec.Base = 8
	case 'x':
		spec.Base = 16
	case 'X':
		spec.Base = 16
		spec.Uppercase = true
	default:
		fmt.Fprintf(f, "%%!%c(bignum.Rational=%s)", verb, x.Text(Decimal))
		return
	}
	io.WriteString(f, x.Text(spec))
}
