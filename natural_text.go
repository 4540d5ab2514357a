// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"io"
)

// decChunk is the largest power of ten such that a single word holds it
// with headroom, used to peel off decimal digits a chunk at a time
// instead of one digit per divide.
const (
	decChunk       = 1_000_000_000_000_000_000 // 10^18
	decChunkDigits = 18
)

// ParseNatural parses s under the grammar
//
//	("0x"|"0X") HEX+ | "0" OCT* | DEC+
//
// (HEX = [0-9a-fA-F], OCT = [0-7], DEC = [0-9]), with no surrounding
// whitespace permitted. An empty string is rejected.
func ParseNatural(s string) (*Natural, error) {
	return new(Natural).SetString(s)
}

// SetString parses s under the ParseNatural grammar and, on success,
// sets z to the result and returns (z, nil). On failure z is left
// unchanged and the returned error wraps ErrInvalidArgument.
func (z *Natural) SetString(s string) (*Natural, error) {
	if s == "" {
		return z, opError("Natural.SetString", ErrInvalidArgument, "empty input")
	}

	base := 10
	i := 0
	switch {
	case len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		base = 16
		i = 2
		if i == len(s) {
			return z, opError("Natural.SetString", ErrInvalidArgument, "missing hex digits after 0x")
		}
	case s[0] == '0' && len(s) > 1:
		base = 8
		i = 1
	}

	acc := new(Natural)
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			return z, opError("Natural.SetString", ErrInvalidArgument,
				fmt.Sprintf("invalid digit %q for base %d", s[i], base))
		}
		acc.mulAddWord(word(base), word(d))
	}
	return z.Set(acc), nil
}

// digitValue reports the numeric value of c as a digit in base, and
// whether c is a valid digit in that base.
func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case '0' <= c && c <= '9':
		v = int(c - '0')
	case 'a' <= c && c <= 'z':
		v = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// mulAddWord sets z = z*base + add and returns z. base and add are
// single digits; this is the fused kernel the parser above rides, one
// character at a time.
func (z *Natural) mulAddWord(base, add word) *Natural {
	d := z.digits()
	n := len(d)
	buf := z.reserve(n + 1)
	c := mulAddVWW(buf[:n], d, base, add)
	buf[n] = c
	z.n = len(normWords(buf))
	return z
}

// String renders x in decimal, with no base prefix. Zero renders as "0".
func (x *Natural) String() string {
	return x.Text(Decimal)
}

// Text renders x under the given FormatSpec. Supported bases are 8, 10, and 16.
func (x *Natural) Text(spec FormatSpec) string {
	base := spec.base()
	d := x.digits()

	var little []byte // digits, least significant first
	switch base {
	case 16:
		little = bitsBaseDigits(d, 4)
	case 8:
		little = bitsBaseDigits(d, 3)
	case 10:
		little = decimalDigits(d)
	default:
		panic("bignum: Text: unsupported base")
	}

	top := len(little)
	for top > 1 && little[top-1] == 0 {
		top--
	}
	little = little[:top]

	alphabet := "0123456789abcdef"
	if spec.Uppercase {
		alphabet = "0123456789ABCDEF"
	}

	var prefix string
	if spec.ShowBase && len(d) != 0 {
		switch base {
		case 16:
			if spec.Uppercase {
				prefix = "0X"
			} else {
				prefix = "0x"
			}
		case 8:
			prefix = "0"
		}
	}

	buf := make([]byte, 0, len(prefix)+len(little))
	buf = append(buf, prefix...)
	for i := len(little) - 1; i >= 0; i-- {
		buf = append(buf, alphabet[little[i]])
	}
	return string(buf)
}

// Format implements fmt.Formatter so that %d, %o, %x, %X and %v render a
// Natural the way they would a native integer, with "#" requesting the
// base prefix.
func (x *Natural) Format(f fmt.State, verb rune) {
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
		fmt.Fprintf(f, "%%!%c(bignum.Natural=%s)", verb, x.Text(Decimal))
		return
	}
	io.WriteString(f, x.Text(spec))
}

// decimalDigits returns the decimal digits of x, least significant
// digit first, by peeling off decChunk-sized remainders.
func decimalDigits(x []word) []byte {
	cur := normWords(append([]word(nil), x...))
	if len(cur) == 0 {
		return []byte{0}
	}

	var chunks []word
	for len(cur) > 0 {
		q := make([]word, len(cur))
		r := divW(q, cur, decChunk)
		chunks = append(chunks, r)
		cur = normWords(q)
	}

	out := make([]byte, len(chunks)*decChunkDigits)
	for ci, chunk := range chunks {
		for i := 0; i < decChunkDigits; i++ {
			out[ci*decChunkDigits+i] = byte(chunk % 10)
			chunk /= 10
		}
	}
	return out
}

// bitsBaseDigits returns the base-2^k digits of x, least significant
// digit first, for k in {3, 4} (octal, hex).
func bitsBaseDigits(x []word, k uint) []byte {
	total := bitLenWords(x)
	if total == 0 {
		return []byte{0}
	}
	ndig := (total + int(k) - 1) / int(k)
	out := make([]byte, ndig)
	for i := 0; i < ndig; i++ {
		out[i] = byte(extractBits(x, uint(i)*k, k))
	}
	return out
}

func bitLenWords(x []word) int {
	n := len(x)
	if n == 0 {
		return 0
	}
	return (n-1)*_W + bitLenWord(x[n-1])
}

// extractBits reads k bits of x starting at bit position pos (LSB-first).
func extractBits(x []word, pos, k uint) word {
	var v word
	for b := uint(0); b < k; b++ {
		p := pos + b
		wi := p / _W
		if int(wi) >= len(x) {
			break
		}
		bit := (x[wi] >> (p % _W)) & 1
		v |= bit << b
	}
	return v
}
