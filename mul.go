// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Schoolbook (Comba) multiply. No Karatsuba or FFT: this package deals
// in values small enough that O(n^2) multiply is the right tradeoff, and
// staying schoolbook keeps the carry chain trivial to reason about.

package bignum

// mulWords sets z = a*b using column-wise (Comba) accumulation: for each
// output column c, it sums a[i]*b[j] over all i+j == c using a
// three-word running accumulator (acc0 the column total, acc1/acc2 the
// carry into the next columns), then shifts the accumulator down before
// moving to the next column. z must have length len(a)+len(b) and must
// not alias a or b - the caller routes in-place multiplication through a
// temporary (see Natural.Mul).
func mulWords(z, a, b []word) {
	m, n := len(a), len(b)
	total := m + n
	for i := 0; i < total; i++ {
		z[i] = 0
	}
	if m == 0 || n == 0 {
		return
	}

	var acc0, acc1, acc2 word
	for c := 0; c < total; c++ {
		lo := maxInt(0, c-n+1)
		hi := minInt(c, m-1)
		for i := lo; i <= hi; i++ {
			j := c - i
			p1, p0 := mulWW(a[i], b[j])
			var cc word
			acc0, cc = addW(acc0, p0)
			acc1, cc = addW2(acc1, p1, cc)
			acc2 += cc
		}
		z[c] = acc0
		acc0, acc1, acc2 = acc1, acc2, 0
	}
}

// addW adds b to a, returning the sum and the carry out (0 or 1).
func addW(a, b word) (sum, carry word) {
	sum = a + b
	if sum < a {
		carry = 1
	}
	return
}

// addW2 adds b and cin to a, returning the sum and the carry out (0, 1,
// or conceivably more, hence the word-typed carry rather than a bool -
// two single-bit carries can never sum past 1, but the extra headroom
// keeps the call sites uniform with addW).
func addW2(a, b, cin word) (sum, carry word) {
	var c1, c2 word
	sum, c1 = addW(a, b)
	sum, c2 = addW(sum, cin)
	return sum, c1 + c2
}

// mul1 sets z = x*v (a single-digit multiply) and returns the carry out.
// z may alias x.
func mul1(z, x []word, v word) (c word) {
	return mulAddVWW(z, x, v, 0)
}
