package bignum

// Integer is an arbitrary-precision signed integer, stored as a sign and
// a Natural magnitude. The invariant neg == false whenever mag == 0 is
// maintained by every constructor and operation, so there is exactly one
// representation of zero. The zero value represents 0 and is ready to
// use. See the package doc comment for the rules governing copying.
type Integer struct {
	neg bool
	mag Natural
}

// normalizeSign restores the "no negative zero" invariant after an
// operation that may have produced a zero magnitude.
func (z *Integer) normalizeSign() {
	if z.mag.IsZero() {
		z.neg = false
	}
}

// Set sets z to x and returns z.
func (z *Integer) Set(x *Integer) *Integer {
	if z == x {
		return z
	}
	z.mag.Set(&x.mag)
	z.neg = x.neg
	return z
}

// SetInt64 sets z to x and returns z.
func (z *Integer) SetInt64(x int64) *Integer {
	if x < 0 {
		// Avoid overflow on -x when x == math.MinInt64.
		z.mag.SetUint64(uint64(-(x + 1)) + 1)
		z.neg = true
		return z
	}
	z.mag.SetUint64(uint64(x))
	z.neg = false
	return z
}

// SetNatural sets z to the non-negative value x and returns z.
func (z *Integer) SetNatural(x *Natural) *Integer {
	z.mag.Set(x)
	z.neg = false
	return z
}

// IsZero reports whether x == 0.
func (x *Integer) IsZero() bool {
	return x.mag.IsZero()
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x *Integer) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Cmp compares x and y, returning -1, 0, or +1 as x is less than, equal
// to, or greater than y.
func (x *Integer) Cmp(y *Integer) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.mag.Cmp(&y.mag)
	if x.neg {
		return -c
	}
	return c
}

// Neg sets z = -x and returns z.
func (z *Integer) Neg(x *Integer) *Integer {
	z.mag.Set(&x.mag)
	z.neg = !x.neg
	z.normalizeSign()
	return z
}

// Add sets z = x + y and returns z. Addition dispatches on sign equality
// and a magnitude comparison rather than delegating to a two's-complement
// representation:
//
//	same sign:            sign(x), |x|+|y|
//	diff sign, |x|>=|y|:  sign(x), |x|-|y|
//	diff sign, |x|<|y|:   sign(y), |y|-|x|
func (z *Integer) Add(x, y *Integer) *Integer {
	if x.neg == y.neg {
		z.mag.Add(&x.mag, &y.mag)
		z.neg = x.neg
		z.normalizeSign()
		return z
	}

	switch x.mag.Cmp(&y.mag) {
	case 0:
		z.mag.SetUint64(0)
		z.neg = false
	case 1:
		_, _ = z.mag.Sub(&x.mag, &y.mag) // x.mag >= y.mag: never fails
		z.neg = x.neg
	default:
		_, _ = z.mag.Sub(&y.mag, &x.mag) // y.mag > x.mag: never fails
		z.neg = y.neg
	}
	z.normalizeSign()
	return z
}

// Sub sets z = x - y and returns z, via the x + (-y) equivalence.
func (z *Integer) Sub(x, y *Integer) *Integer {
	var negY Integer
	negY.mag.Set(&y.mag)
	negY.neg = !y.neg
	negY.normalizeSign()
	return z.Add(x, &negY)
}

// Mul sets z = x*y and returns z. The sign is the XOR of the operand
// signs; the magnitude is the Natural product.
func (z *Integer) Mul(x, y *Integer) *Integer {
	z.mag.Mul(&x.mag, &y.mag)
	z.neg = x.neg != y.neg
	z.normalizeSign()
	return z
}

// DivMod sets z to the truncating quotient and rem to the remainder of
// x/y, such that x == z*y + rem with |rem| < |y| and rem taking the sign
// of x (truncation toward zero), and returns (z, rem, nil). If y is
// zero, neither z nor rem is modified and an error wrapping
// ErrDivideByZero is returned.
func (z *Integer) DivMod(x, y, rem *Integer) (*Integer, *Integer, error) {
	if y.mag.IsZero() {
		return z, rem, opError("Integer.DivMod", ErrDivideByZero, "")
	}

	var qmag, rmag Natural
	_, _, _ = qmag.DivMod(&x.mag, &y.mag, &rmag)

	z.mag.Set(&qmag)
	z.neg = x.neg != y.neg
	z.normalizeSign()

	rem.mag.Set(&rmag)
	rem.neg = x.neg
	rem.normalizeSign()

	return z, rem, nil
}

// Shl sets z = x << k and returns z. The sign is preserved (Integer is a
// sign-magnitude representation, not two's complement, so a shift is a
// shift of the magnitude).
func (z *Integer) Shl(x *Integer, k uint) *Integer {
	z.mag.Shl(&x.mag, k)
	z.neg = x.neg
	z.normalizeSign()
	return z
}

// Shr sets z = x >> k and returns z, preserving sign as Shl does.
func (z *Integer) Shr(x *Integer, k uint) *Integer {
	z.mag.Shr(&x.mag, k)
	z.neg = x.neg
	z.normalizeSign()
	return z
}

// Int64 returns x as an int64. It returns an error wrapping ErrOverflow
// if the magnitude requires the sign bit (i.e. is >= 2^63), which
// includes the case |x| == 2^63 even though -2^63 is representable: the
// conversion is defined purely in terms of the magnitude's range, not
// the target's two's-complement asymmetry.
func (x *Integer) Int64() (int64, error) {
	u, err := x.mag.Uint64()
	if err != nil || u >= 1<<63 {
		return 0, opError("Integer.Int64", ErrOverflow, "magnitude exceeds int64 range")
	}
	if x.neg {
		return -int64(u), nil
	}
	return int64(u), nil
}
