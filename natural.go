// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// inlineDigits is the small-buffer optimization threshold: a Natural
// whose value fits in this many words never touches the heap. 16 is the
// reference size; nothing below depends on this particular choice.
const inlineDigits = 16

// Natural is an arbitrary-precision unsigned integer. The zero value
// represents 0 and is ready to use. See the package doc comment for the
// rules governing copying a Natural.
type Natural struct {
	inline [inlineDigits]word
	heap   []word // non-nil iff the heap buffer is the active store
	n      int    // number of active digits; canonical (n == 0 or digits()[n-1] != 0)
}

// digits returns the active digit slice, least-significant word first.
func (x *Natural) digits() []word {
	if x.heap != nil {
		return x.heap[:x.n]
	}
	return x.inline[:x.n]
}

// reserve returns a writable buffer of length n for z, switching between
// the inline array and a heap buffer as needed. It never reads or
// preserves z's previous contents - callers that need z's old digits
// (because z aliases an operand) must capture them via digits() before
// calling reserve.
func (z *Natural) reserve(n int) []word {
	if n <= inlineDigits {
		z.heap = nil
		return z.inline[:n]
	}
	if cap(z.heap) < n {
		z.heap = make([]word, n)
		return z.heap
	}
	return z.heap[:n]
}

// setWords installs src (assumed already canonical) as z's value.
func (z *Natural) setWords(src []word) *Natural {
	buf := z.reserve(len(src))
	copy(buf, src)
	z.n = len(src)
	return z
}

// Set sets z to x and returns z. Use Set, never a plain assignment, to
// obtain an independent copy of a Natural - see the package doc comment.
func (z *Natural) Set(x *Natural) *Natural {
	if z == x {
		return z
	}
	return z.setWords(x.digits())
}

// SetUint64 sets z to x and returns z.
func (z *Natural) SetUint64(x uint64) *Natural {
	if x == 0 {
		z.heap = nil
		z.n = 0
		return z
	}
	buf := z.reserve(1)
	buf[0] = word(x)
	z.n = 1
	return z
}

// IsZero reports whether x == 0.
func (x *Natural) IsZero() bool {
	return x.n == 0
}

// Cmp compares x and y, returning -1, 0, or +1 as x is less than, equal
// to, or greater than y.
func (x *Natural) Cmp(y *Natural) int {
	return cmpW(x.digits(), y.digits())
}

// BitLen returns the length of x in bits. BitLen(0) == 0.
func (x *Natural) BitLen() int {
	d := x.digits()
	if len(d) == 0 {
		return 0
	}
	return (len(d)-1)*_W + bitLenWord(d[len(d)-1])
}

// Add sets z = x + y and returns z.
func (z *Natural) Add(x, y *Natural) *Natural {
	xd, yd := x.digits(), y.digits()
	if len(xd) < len(yd) {
		xd, yd = yd, xd
	}
	m, n := len(xd), len(yd)
	if m == 0 {
		z.heap, z.n = nil, 0
		return z
	}

	buf := z.reserve(m + 1)
	c := addVV(buf[:n], xd[:n], yd)
	if m > n {
		c = addVW(buf[n:m], xd[n:], c)
	}
	buf[m] = c
	z.n = len(normWords(buf))
	return z
}

// Sub sets z = x - y and returns z. If x < y, natural subtraction is
// undefined: z is left unchanged and an error wrapping ErrRangeError is
// returned.
func (z *Natural) Sub(x, y *Natural) (*Natural, error) {
	xd, yd := x.digits(), y.digits()
	if cmpW(xd, yd) < 0 {
		return z, opError("Natural.Sub", ErrRangeError, "minuend is less than subtrahend")
	}
	m, n := len(xd), len(yd)
	if m == 0 {
		z.heap, z.n = nil, 0
		return z, nil
	}

	buf := z.reserve(m)
	c := subVV(buf[:n], xd[:n], yd)
	if m > n {
		c = subVW(buf[n:], xd[n:], c)
	}
	_ = c // guaranteed 0: cmpW above established x >= y
	z.n = len(normWords(buf))
	return z, nil
}

// Shl sets z = x << k and returns z.
func (z *Natural) Shl(x *Natural, k uint) *Natural {
	xd := x.digits()
	if len(xd) == 0 {
		z.heap, z.n = nil, 0
		return z
	}

	kDigits := int(k / _W)
	kBits := k % _W
	n := len(xd) + kDigits

	buf := z.reserve(n + 1)
	top := shlVU(buf[kDigits:n], xd, kBits)
	buf[n] = top
	for i := 0; i < kDigits; i++ {
		buf[i] = 0
	}
	z.n = len(normWords(buf))
	return z
}

// Shr sets z = x >> k and returns z.
func (z *Natural) Shr(x *Natural, k uint) *Natural {
	xd := x.digits()
	kDigits := int(k / _W)
	if kDigits >= len(xd) {
		z.heap, z.n = nil, 0
		return z
	}
	kBits := k % _W
	n := len(xd) - kDigits

	buf := z.reserve(n)
	shrVU(buf, xd[kDigits:], kBits)
	z.n = len(normWords(buf))
	return z
}

// mulWord sets z = xd*v (a single-digit multiply) and returns z. Safe
// for z to alias the Natural that owns xd, per the mul1 aliasing rule.
func (z *Natural) mulWord(xd []word, v word) *Natural {
	if v == 0 || len(xd) == 0 {
		z.heap, z.n = nil, 0
		return z
	}
	buf := z.reserve(len(xd) + 1)
	buf[len(xd)] = mul1(buf[:len(xd)], xd, v)
	z.n = len(normWords(buf))
	return z
}

// Mul sets z = x*y and returns z. The underlying Comba kernel may not
// alias its destination with either input (see mul.go), so if z is x or
// y the product is computed into an unaliased temporary first.
func (z *Natural) Mul(x, y *Natural) *Natural {
	xd, yd := x.digits(), y.digits()
	if len(xd) < len(yd) {
		xd, yd = yd, xd
	}
	m, n := len(xd), len(yd)
	if m == 0 || n == 0 {
		z.heap, z.n = nil, 0
		return z
	}
	if n == 1 {
		return z.mulWord(xd, yd[0])
	}

	if z == x || z == y {
		tmp := make([]word, m+n)
		mulWords(tmp, xd, yd)
		return z.setWords(normWords(tmp))
	}

	buf := z.reserve(m + n)
	mulWords(buf, xd, yd)
	z.n = len(normWords(buf))
	return z
}

// DivMod sets z to the quotient and rem to the remainder of x/y such
// that x == z*y + rem and 0 <= rem < y, then returns (z, rem, nil). If y
// is zero, neither z nor rem is modified and an error wrapping
// ErrDivideByZero is returned.
func (z *Natural) DivMod(x, y, rem *Natural) (*Natural, *Natural, error) {
	xd, yd := x.digits(), y.digits()
	if len(yd) == 0 {
		return z, rem, opError("Natural.DivMod", ErrDivideByZero, "")
	}

	if cmpW(xd, yd) < 0 {
		r := append([]word(nil), xd...)
		z.setWords(nil)
		rem.setWords(r)
		return z, rem, nil
	}

	if len(yd) == 1 {
		qbuf := make([]word, len(xd))
		r := divW(qbuf, xd, yd[0])
		z.setWords(normWords(qbuf))
		if r == 0 {
			rem.setWords(nil)
		} else {
			rem.setWords([]word{r})
		}
		return z, rem, nil
	}

	q, r := divLarge(xd, yd)
	z.setWords(q)
	rem.setWords(r)
	return z, rem, nil
}

// GCD sets z to the greatest common divisor of x and y and returns z.
// gcd(0, v) == gcd(v, 0) == v.
func (z *Natural) GCD(x, y *Natural) *Natural {
	a := new(Natural).Set(x)
	b := new(Natural).Set(y)
	if a.Cmp(b) < 0 {
		a, b = b, a
	}

	var q Natural
	for {
		if b.IsZero() {
			return z.Set(a)
		}
		_, _, _ = q.DivMod(a, b, a) // a := a mod b
		if a.IsZero() {
			return z.Set(b)
		}
		_, _, _ = q.DivMod(b, a, b) // b := b mod a
		if b.IsZero() {
			return z.Set(a)
		}
	}
}

// Uint64 returns x as a uint64. It returns an error wrapping
// ErrOverflow if x does not fit.
func (x *Natural) Uint64() (uint64, error) {
	if x.BitLen() > 64 {
		return 0, opError("Natural.Uint64", ErrOverflow, "value does not fit in uint64")
	}
	d := x.digits()
	if len(d) == 0 {
		return 0, nil
	}
	return uint64(d[0]), nil
}
