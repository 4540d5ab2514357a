package bignum

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generate implements quick.Generator for the algebraic-law properties
// below; it rides Natural's own generator and picks a sign independently.
func (Integer) Generate(rand *rand.Rand, size int) reflect.Value {
	mag := Natural.Generate(Natural{}, rand, size).Interface().(Natural)
	var z Integer
	z.mag = mag
	z.neg = rand.Intn(2) == 0 && !mag.IsZero()
	return reflect.ValueOf(z)
}

func mustInteger(t *testing.T, s string) *Integer {
	t.Helper()
	v, err := ParseInteger(s)
	require.NoError(t, err)
	return v
}

func TestIntegerSignDispatch(t *testing.T) {
	t.Run("same sign addition", func(t *testing.T) {
		a := mustInteger(t, "-5")
		b := mustInteger(t, "-7")
		var z Integer
		z.Add(a, b)
		assert.Equal(t, "-12", z.String())
	})

	t.Run("different sign, larger magnitude wins the sign", func(t *testing.T) {
		a := mustInteger(t, "10")
		b := mustInteger(t, "-3")
		var z Integer
		z.Add(a, b)
		assert.Equal(t, "7", z.String())

		a2 := mustInteger(t, "3")
		b2 := mustInteger(t, "-10")
		z.Add(a2, b2)
		assert.Equal(t, "-7", z.String())
	})

	t.Run("subtraction via negation", func(t *testing.T) {
		a := mustInteger(t, "5")
		b := mustInteger(t, "8")
		var z Integer
		z.Sub(a, b)
		assert.Equal(t, "-3", z.String())
	})

	t.Run("multiply sign is xor", func(t *testing.T) {
		a := mustInteger(t, "-4")
		b := mustInteger(t, "6")
		var z Integer
		z.Mul(a, b)
		assert.Equal(t, "-24", z.String())
	})

	t.Run("truncating division, remainder takes dividend's sign", func(t *testing.T) {
		a := mustInteger(t, "-7")
		b := mustInteger(t, "2")
		var q, r Integer
		_, _, err := q.DivMod(a, b, &r)
		require.NoError(t, err)
		assert.Equal(t, "-3", q.String())
		assert.Equal(t, "-1", r.String())
	})

	t.Run("zero is never negative", func(t *testing.T) {
		a := mustInteger(t, "5")
		b := mustInteger(t, "-5")
		var z Integer
		z.Add(a, b)
		assert.True(t, z.IsZero())
		assert.Equal(t, "0", z.String())
	})
}

func TestIntegerInt64Overflow(t *testing.T) {
	v, err := ParseInteger("9223372036854775808") // 2^63
	require.NoError(t, err)
	_, err = v.Int64()
	require.Error(t, err)

	neg, err := ParseInteger("-9223372036854775808")
	require.NoError(t, err)
	_, err = neg.Int64() // magnitude 2^63 rejected regardless of sign
	require.Error(t, err)

	ok, err := ParseInteger("9223372036854775807") // 2^63 - 1
	require.NoError(t, err)
	got, err := ok.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), got)
}

func TestIntegerAlgebraicLaws(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}

	addCommutative := func(a, b Integer) bool {
		var ab, ba Integer
		ab.Add(&a, &b)
		ba.Add(&b, &a)
		return ab.Cmp(&ba) == 0
	}
	require.NoError(t, quick.Check(addCommutative, cfg))

	addThenSubIsIdentity := func(a, b Integer) bool {
		var sum, back Integer
		sum.Add(&a, &b)
		back.Sub(&sum, &b)
		return back.Cmp(&a) == 0
	}
	require.NoError(t, quick.Check(addThenSubIsIdentity, cfg))

	mulDistributesOverAdd := func(a, b, c Integer) bool {
		var bc, lhs, ab, ac, rhs Integer
		bc.Add(&b, &c)
		lhs.Mul(&a, &bc)
		ab.Mul(&a, &b)
		ac.Mul(&a, &c)
		rhs.Add(&ab, &ac)
		return lhs.Cmp(&rhs) == 0
	}
	require.NoError(t, quick.Check(mulDistributesOverAdd, cfg))

	divisionIdentity := func(a, b Integer) bool {
		if b.IsZero() {
			return true
		}
		var q, r, qb, reassembled Integer
		if _, _, err := q.DivMod(&a, &b, &r); err != nil {
			return false
		}
		qb.Mul(&q, &b)
		reassembled.Add(&qb, &r)
		return reassembled.Cmp(&a) == 0
	}
	require.NoError(t, quick.Check(divisionIdentity, cfg))

	doubleNegationIsIdentity := func(a Integer) bool {
		var negA, back Integer
		negA.Neg(&a)
		back.Neg(&negA)
		return back.Cmp(&a) == 0
	}
	require.NoError(t, quick.Check(doubleNegationIsIdentity, cfg))
}
