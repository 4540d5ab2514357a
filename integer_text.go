package bignum

import (
	"fmt"
	"io"
)

// ParseInteger parses s as an optional leading '-' followed by the
// ParseNatural grammar.
func ParseInteger(s string) (*Integer, error) {
	return new(Integer).SetString(s)
}

// SetString parses s under the ParseInteger grammar and, on success,
// sets z to the result and returns (z, nil). On failure z is left
// unchanged and the returned error wraps ErrInvalidArgument.
func (z *Integer) SetString(s string) (*Integer, error) {
	if s == "" {
		return z, opError("Integer.SetString", ErrInvalidArgument, "empty input")
	}

	neg := false
	rest := s
	if s[0] == '-' {
		neg = true
		rest = s[1:]
	}

	var mag Natural
	if _, err := mag.SetString(rest); err != nil {
		return z, opError("Integer.SetString", ErrInvalidArgument, err.Error())
	}

	z.mag.Set(&mag)
	z.neg = neg
	z.normalizeSign()
	return z, nil
}

// String renders x in decimal, with a leading "-" for negative values.
func (x *Integer) String() string {
	return x.Text(Decimal)
}

// Text renders x under the given FormatSpec, with a leading "-" for
// negative values applied outside the magnitude's own rendering.
func (x *Integer) Text(spec FormatSpec) string {
	s := x.mag.Text(spec)
	if x.neg {
		return "-" + s
	}
	return s
}

// Format implements fmt.Formatter, mirroring Natural.Format with the
// sign carried through Text.
func (x *Integer) Format(f fmt.State, verb rune) {
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
		fmt.Fprintf(f, "%%!%c(bignum.Integer=%s)", verb, x.Text(Decimal))
		return
	}
	io.WriteString(f, x.Text(spec))
}
