package bignum

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generate implements quick.Generator so Natural values can be produced
// by testing/quick for the algebraic-law properties below.
func (Natural) Generate(rand *rand.Rand, size int) reflect.Value {
	n := rand.Intn(size + 1)
	buf := make([]byte, n)
	rand.Read(buf)
	s := "0"
	if n > 0 {
		s = ""
		for _, b := range buf {
			s += string("0123456789abcdef"[b%16])
		}
		if s[0] == '0' && len(s) > 1 {
			s = "1" + s[1:]
		}
		s = "0x" + s
	}
	v, err := ParseNatural(s)
	if err != nil {
		v = new(Natural)
	}
	return reflect.ValueOf(*v)
}

func mustNatural(t *testing.T, s string) *Natural {
	t.Helper()
	v, err := ParseNatural(s)
	require.NoError(t, err)
	return v
}

func TestNaturalEndToEnd(t *testing.T) {
	t.Run("carry out of every digit", func(t *testing.T) {
		x := mustNatural(t, "0xffffffffffffffff")
		y := mustNatural(t, "0x2")
		var z Natural
		z.Add(x, y)
		assert.Equal(t, "0x10000000000000001", z.Text(Hex.withShowBase()))
	})

	t.Run("huge subtraction", func(t *testing.T) {
		x := mustNatural(t, "5872489572457574027439274027348275342809754320711018574807407090990940275827586671651690897")
		y := mustNatural(t, "842758978027689671615847509157087514875097509475029454785478748571507457514754190754")
		want := "5872488729698595999749602411500766185722239445613509099777952305512191704320129156897500143"
		z, err := new(Natural).Sub(x, y)
		require.NoError(t, err)
		assert.Equal(t, want, z.String())
	})

	t.Run("huge multiply", func(t *testing.T) {
		x := mustNatural(t, "12345678901234567890123456789012345678901234567890123456789012345678901234567890")
		y := mustNatural(t, "1234567890123456789012345678901234567890123456789012345678901234567890123456789012345678901234567890")
		want := "15241578753238836750495351562566681945008382873376009755225118122311263526910001371743100137174310012193273126047859425087639153757049236500533455762536198787501905199875019052100"
		var z Natural
		z.Mul(x, y)
		assert.Equal(t, want, z.String())
	})

	t.Run("divmod against a multi-digit divisor", func(t *testing.T) {
		x := mustNatural(t, "0x100000000000000000000000000000000000000000000000000000000000000000000000")
		y := mustNatural(t, "0x10000000000000001000000000000000100000000")
		var q, r Natural
		_, _, err := q.DivMod(x, y, &r)
		require.NoError(t, err)
		assert.Equal(t, "0xffffffffffffffff000000000000000", q.Text(Hex.withShowBase()))
		assert.Equal(t, "0x100000000000000000000000", r.Text(Hex.withShowBase()))
	})

	t.Run("gcd of two large primes' product operands", func(t *testing.T) {
		x := mustNatural(t, "2038355020176327696765561949673186971898109715960816150233379221718753632190267")
		y := mustNatural(t, "1957628088684195906794648605131674616575412301467318480917205787195238636855999")
		want := "20181732873032947492728336135378088830674353623374417329043358630878748833567"
		var z Natural
		z.GCD(x, y)
		assert.Equal(t, want, z.String())
	})
}

// withShowBase returns a copy of f with ShowBase set, a small test-only
// convenience so the table above can stay terse.
func (f FormatSpec) withShowBase() FormatSpec {
	f.ShowBase = true
	return f
}

func TestNaturalSubUnderflow(t *testing.T) {
	x := mustNatural(t, "5")
	y := mustNatural(t, "6")
	var z Natural
	z.SetUint64(42)
	_, err := z.Sub(x, y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRangeError))
	// z is left unchanged on failure.
	got, err := z.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)
}

func TestNaturalSelfSubtractionIsZero(t *testing.T) {
	x := mustNatural(t, "123456789012345678901234567890")
	z, err := new(Natural).Sub(x, x)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
}

func TestNaturalDivideByZero(t *testing.T) {
	x := mustNatural(t, "10")
	var q, r, zero Natural
	_, _, err := q.DivMod(x, &zero, &r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func TestNaturalShiftByWholeDigits(t *testing.T) {
	x := mustNatural(t, "0x1")
	var z Natural
	z.Shl(x, 64)
	assert.Equal(t, "0x10000000000000000", z.Text(Hex.withShowBase()))
}

func TestNaturalAliasedMultiply(t *testing.T) {
	x := mustNatural(t, "123456789012345678901234567890")
	y := mustNatural(t, "987654321098765432109876543210")
	var want Natural
	want.Mul(x, y)

	z := new(Natural).Set(x)
	z.Mul(z, y)
	assert.Equal(t, want.String(), z.String())

	z2 := new(Natural).Set(y)
	z2.Mul(x, z2)
	assert.Equal(t, want.String(), z2.String())
}

func TestNaturalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "0xdeadbeef", "0777", "123456789012345678901234567890"} {
		v := mustNatural(t, s)
		for _, spec := range []FormatSpec{Decimal, Octal, Hex} {
			s2 := v.Text(spec)
			v2, err := new(Natural).SetString(reparseable(s2, spec))
			require.NoError(t, err)
			assert.Equal(t, 0, v.Cmp(v2))
		}
	}
}

// reparseable prepends whatever base prefix ParseNatural's grammar
// requires to re-read text rendered without Hex/Octal's own prefix.
func reparseable(s string, spec FormatSpec) string {
	switch spec.base() {
	case 16:
		return "0x" + s
	case 8:
		if s == "0" {
			return s
		}
		return "0" + s
	default:
		return s
	}
}

func TestNaturalAlgebraicLaws(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}

	commutative := func(a, b Natural) bool {
		var ab, ba Natural
		ab.Add(&a, &b)
		ba.Add(&b, &a)
		return ab.Cmp(&ba) == 0
	}
	require.NoError(t, quick.Check(commutative, cfg))

	mulCommutative := func(a, b Natural) bool {
		var ab, ba Natural
		ab.Mul(&a, &b)
		ba.Mul(&b, &a)
		return ab.Cmp(&ba) == 0
	}
	require.NoError(t, quick.Check(mulCommutative, cfg))

	associative := func(a, b, c Natural) bool {
		var ab, abc1, bc, abc2 Natural
		ab.Add(&a, &b)
		abc1.Add(&ab, &c)
		bc.Add(&b, &c)
		abc2.Add(&a, &bc)
		return abc1.Cmp(&abc2) == 0
	}
	require.NoError(t, quick.Check(associative, cfg))

	distributive := func(a, b, c Natural) bool {
		var bc, lhs, ab, ac, rhs Natural
		bc.Add(&b, &c)
		lhs.Mul(&a, &bc)
		ab.Mul(&a, &b)
		ac.Mul(&a, &c)
		rhs.Add(&ab, &ac)
		return lhs.Cmp(&rhs) == 0
	}
	require.NoError(t, quick.Check(distributive, cfg))

	additiveCancellation := func(a, b Natural) bool {
		lo, hi := &a, &b
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		var sum Natural
		sum.Add(lo, hi)
		back, err := new(Natural).Sub(&sum, hi)
		if err != nil {
			return false
		}
		return back.Cmp(lo) == 0
	}
	require.NoError(t, quick.Check(additiveCancellation, cfg))

	divisionIdentity := func(a, b Natural) bool {
		if b.IsZero() {
			return true
		}
		var q, r, reassembled, qb Natural
		if _, _, err := q.DivMod(&a, &b, &r); err != nil {
			return false
		}
		if r.Cmp(&b) >= 0 {
			return false
		}
		qb.Mul(&q, &b)
		reassembled.Add(&qb, &r)
		return reassembled.Cmp(&a) == 0
	}
	require.NoError(t, quick.Check(divisionIdentity, cfg))

	shiftIsMultiplyByPowerOfTwo := func(a Natural) bool {
		for k := uint(0); k <= 65; k += 13 {
			var shifted, pow, mul Natural
			shifted.Shl(&a, k)
			pow.SetUint64(1)
			pow.Shl(&pow, k)
			mul.Mul(&a, &pow)
			if shifted.Cmp(&mul) != 0 {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(shiftIsMultiplyByPowerOfTwo, cfg))

	gcdDividesBoth := func(a, b Natural) bool {
		if a.IsZero() && b.IsZero() {
			return true
		}
		var g, q, r Natural
		g.GCD(&a, &b)
		if g.IsZero() {
			return false
		}
		if _, _, err := q.DivMod(&a, &g, &r); err != nil || !r.IsZero() {
			return false
		}
		if _, _, err := q.DivMod(&b, &g, &r); err != nil || !r.IsZero() {
			return false
		}
		return true
	}
	require.NoError(t, quick.Check(gcdDividesBoth, cfg))

	gcdZero := func(a Natural) bool {
		var z, g Natural
		g.GCD(&a, &z)
		return g.Cmp(&a) == 0
	}
	require.NoError(t, quick.Check(gcdZero, cfg))
}
