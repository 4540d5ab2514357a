package bignum

import "math"

// Rational is an arbitrary-precision exact fraction of two Integers. It
// is always kept in lowest terms with a positive denominator: gcd(|num|,
// denom) == 1, denom > 0, and num == 0 implies denom == 1. The zero
// value is not a valid operand: its denominator is 0, so it renders as
// "0/0", Add, Sub and Mul with it as an operand yield 0/0, and Cmp
// reports it equal to every value. It may be used as a receiver, and
// SetFrac, SetInteger, SetString, SetFloat64 or Set with a valid value
// make it valid. See the package doc comment for the rules governing
// copying.
type Rational struct {
	num   Integer
	denom Integer
}

// normalize enforces the canonical-form invariant described on
// Rational: positive denominator, reduced by the gcd, denom == 1 when
// num == 0. It fails with ErrDivideByZero if denom is zero, leaving z
// unmodified.
func (z *Rational) normalize() error {
	if z.denom.IsZero() {
		return opError("Rational.normalize", ErrDivideByZero, "")
	}
	if z.denom.neg {
		z.num.neg = !z.num.neg && !z.num.mag.IsZero()
		z.denom.neg = false
	}
	if z.num.IsZero() {
		z.denom.SetInt64(1)
		return nil
	}

	var g Natural
	g.GCD(&z.num.mag, &z.denom.mag)
	if g.Cmp(new(Natural).SetUint64(1)) != 0 {
		var qnum, qden, rem Natural
		_, _, _ = qnum.DivMod(&z.num.mag, &g, &rem)
		_, _, _ = qden.DivMod(&z.denom.mag, &g, &rem)
		z.num.mag.Set(&qnum)
		z.denom.mag.Set(&qden)
	}
	return nil
}

// SetFrac sets z = num/denom, reduced to lowest terms, and returns
// (z, nil). If denom is zero, z is left unchanged and an error wrapping
// ErrDivideByZero is returned.
func (z *Rational) SetFrac(num, denom *Integer) (*Rational, error) {
	var n, d Integer
	n.Set(num)
	d.Set(denom)
	if d.IsZero() {
		return z, opError("Rational.SetFrac", ErrDivideByZero, "")
	}
	z.num.Set(&n)
	z.denom.Set(&d)
	if err := z.normalize(); err != nil {
		return z, err
	}
	return z, nil
}

// SetInteger sets z to the integer value x (denominator 1) and returns z.
func (z *Rational) SetInteger(x *Integer) *Rational {
	z.num.Set(x)
	z.denom.SetInt64(1)
	return z
}

// Set sets z to x and returns z.
func (z *Rational) Set(x *Rational) *Rational {
	if z == x {
		return z
	}
	z.num.Set(&x.num)
	z.denom.Set(&x.denom)
	return z
}

// IsZero reports whether x == 0.
func (x *Rational) IsZero() bool {
	return x.num.IsZero()
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x *Rational) Sign() int {
	return x.num.Sign()
}

// Cmp compares x and y by cross-multiplication, returning -1, 0, or +1.
func (x *Rational) Cmp(y *Rational) int {
	var lhs, rhs Integer
	lhs.Mul(&x.num, &y.denom)
	rhs.Mul(&y.num, &x.denom)
	return lhs.Cmp(&rhs)
}

// Add sets z = x + y and returns z.
func (z *Rational) Add(x, y *Rational) *Rational {
	var a, b, num Integer
	a.Mul(&x.num, &y.denom)
	b.Mul(&y.num, &x.denom)
	num.Add(&a, &b)

	var denom Integer
	denom.Mul(&x.denom, &y.denom)

	z.num.Set(&num)
	z.denom.Set(&denom)
	_ = z.normalize() // denom is a product of two positive denominators: never zero
	return z
}

// Sub sets z = x - y and returns z.
func (z *Rational) Sub(x, y *Rational) *Rational {
	var negY Rational
	negY.num.Neg(&y.num)
	negY.denom.Set(&y.denom)
	return z.Add(x, &negY)
}

// Mul sets z = x*y and returns z.
func (z *Rational) Mul(x, y *Rational) *Rational {
	var num, denom Integer
	num.Mul(&x.num, &y.num)
	denom.Mul(&x.denom, &y.denom)
	z.num.Set(&num)
	z.denom.Set(&denom)
	_ = z.normalize()
	return z
}

// Quo sets z = x/y and returns z. If y is zero, z is left unchanged and
// an error wrapping ErrDivideByZero is returned.
func (z *Rational) Quo(x, y *Rational) (*Rational, error) {
	if y.IsZero() {
		return z, opError("Rational.Quo", ErrDivideByZero, "")
	}
	var num, denom Integer
	num.Mul(&x.num, &y.denom)
	denom.Mul(&x.denom, &y.num)
	z.num.Set(&num)
	z.denom.Set(&denom)
	if err := z.normalize(); err != nil {
		return z, err
	}
	return z, nil
}

// Neg sets z = -x and returns z.
func (z *Rational) Neg(x *Rational) *Rational {
	z.num.Neg(&x.num)
	z.denom.Set(&x.denom)
	return z
}

// SetFloat64 sets z to the exact rational value of f and returns
// (z, nil). f is decomposed at the IEEE-754 bit level (sign, biased
// exponent, mantissa, including the subnormal case) rather than via any
// decimal intermediate, so the result is the precise binary value f
// holds, not the nearest decimal rendering of it. NaN and infinities
// fail with ErrNotANumber.
func (z *Rational) SetFloat64(f float64) (*Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return z, opError("Rational.SetFloat64", ErrNotANumber, "")
	}
	if f == 0 {
		z.num.SetInt64(0)
		z.denom.SetInt64(1)
		return z, nil
	}

	bits := math.Float64bits(f)
	sign := bits>>63 != 0
	biasedExp := int((bits >> 52) & 0x7ff)
	frac := bits & (1<<52 - 1)

	var exp int
	if biasedExp == 0 {
		exp = -1074 // subnormal: no implicit leading bit, min exponent
	} else {
		frac |= 1 << 52
		exp = biasedExp - 1075 // 1023 (bias) + 52 (mantissa bits)
	}

	var mantissa Natural
	mantissa.SetUint64(frac)

	var num, denom Natural
	if exp >= 0 {
		num.Shl(&mantissa, uint(exp))
		denom.SetUint64(1)
	} else {
		num.Set(&mantissa)
		denom.SetUint64(1)
		denom.Shl(&denom, uint(-exp))
	}

	z.num.SetNatural(&num)
	z.num.neg = sign
	z.denom.SetNatural(&denom)
	_ = z.normalize()
	return z, nil
}

// Float64 returns a float64 for x whose 53-bit significand is the
// quotient of x's numerator and denominator truncated toward zero (no
// rounding to nearest), and an error wrapping ErrOverflow or
// ErrUnderflow if x is outside float64's representable range.
func (x *Rational) Float64() (float64, error) {
	if x.num.IsZero() {
		return 0, nil
	}

	numMag := new(Natural).Set(&x.num.mag)
	denMag := new(Natural).Set(&x.denom.mag)

	numBits := numMag.BitLen()
	denBits := denMag.BitLen()
	shift := 54 - numBits + denBits

	var shiftedNum, shiftedDen Natural
	if shift >= 0 {
		shiftedNum.Shl(numMag, uint(shift))
		shiftedDen.Set(denMag)
	} else {
		shiftedNum.Set(numMag)
		shiftedDen.Shl(denMag, uint(-shift))
	}

	var q, r Natural
	if _, _, err := q.DivMod(&shiftedNum, &shiftedDen, &r); err != nil {
		return 0, opError("Rational.Float64", ErrDivideByZero, "")
	}

	qBits := q.BitLen()
	extra := qBits - 53
	exp := extra - shift

	var mantissa Natural
	if extra <= 0 {
		mantissa.Shl(&q, uint(-extra))
	} else {
		mantissa.Shr(&q, uint(extra))
	}

	m, err := mantissa.Uint64()
	if err != nil {
		return 0, opError("Rational.Float64", ErrOverflow, "")
	}

	val := math.Ldexp(float64(m), exp)
	if x.num.neg {
		val = -val
	}

	if math.IsInf(val, 0) {
		return 0, opError("Rational.Float64", ErrOverflow, "")
	}
	if val == 0 {
		return 0, opError("Rational.Float64", ErrUnderflow, "")
	}
	return val, nil
}
