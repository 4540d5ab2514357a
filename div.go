// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Multi-digit division: Knuth, The Art of Computer Programming, Volume 2,
// section 4.3.1, Algorithm D.

package bignum

// divW divides x by the single digit y, returning the quotient (written
// into z, which must have length len(x)) and the remainder.
func divW(z, x []word, y word) (r word) {
	return divWVW(z, 0, x, y)
}

// divLarge divides uIn by v, both at least two digits in v's case
// (len(v) >= 2; the caller routes the len(v) == 1 case through divW), and
// returns the freshly allocated, canonical quotient and remainder. It
// does not modify uIn or v.
func divLarge(uIn, v []word) (q, r []word) {
	n := len(v)
	m := len(uIn) - n

	// D1. Normalize: scale both operands so the divisor's top digit has
	// its high bit set. This bounds the quotient estimate in D3 to at
	// most two too large; the refinement loop in D3 and the add-back in
	// D6 remove that excess without needing an unbounded search.
	shift := nlz(v[n-1])

	vn := make([]word, n)
	shlVU(vn, v, shift)

	un := make([]word, len(uIn)+1)
	un[len(uIn)] = shlVU(un[:len(uIn)], uIn, shift)

	qhatv := make([]word, n+1)
	qc := make([]word, m+1)

	// D2-D7. Walk the dividend's top index downward, estimating one
	// quotient digit per column and subtracting its contribution.
	for j := m; j >= 0; j-- {
		// D3. Estimate qhat.
		var qhat, rhat word
		ujn := un[j+n]
		if ujn != vn[n-1] {
			qhat, rhat = divWW(ujn, un[j+n-1], vn[n-1])

			// Refine: qhat is at most 2 too large; this loop removes
			// that excess using the divisor's second-highest digit.
			hi, lo := mulWW(qhat, vn[n-2])
			for greaterThan(hi, lo, rhat, un[j+n-2]) {
				qhat--
				prevRhat := rhat
				rhat += vn[n-1]
				if rhat < prevRhat { // rhat overflowed _W bits
					break
				}
				hi, lo = mulWW(qhat, vn[n-2])
			}
		} else {
			// ujn == vn[n-1]: qhat would compute to 2^_W (out of range).
			// The true digit is at most 2^_W-1 because normalization
			// guarantees vn[n-1] has its high bit set.
			qhat = ^word(0)
		}

		// D4. Multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		c := subVV(un[j:j+len(qhatv)], un[j:], qhatv)
		if c != 0 {
			// D6. Add back: qhat was one too large.
			c := addVV(un[j:j+n], un[j:], vn)
			un[j+n] += c
			qhat--
		}

		qc[j] = qhat
	}

	// D8. Denormalize the remainder; the quotient digits already
	// represent the true quotient since both operands were scaled by the
	// same shift.
	q = normWords(qc)
	shrVU(un, un, shift)
	r = normWords(un)
	return q, r
}
