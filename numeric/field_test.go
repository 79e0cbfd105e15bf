package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/K1T3K1/rsmath/numeric"
)

func TestBuiltin_Float64(t *testing.T) {
	t.Parallel()

	f := numeric.Builtin[float64]{}
	require.Equal(t, 0.0, f.Zero())
	require.Equal(t, 1.0, f.One())
	require.Equal(t, 7.0, f.FromInt(7))
	require.Equal(t, 5.5, f.Add(2, 3.5))
	require.Equal(t, -1.5, f.Sub(2, 3.5))
	require.Equal(t, 7.0, f.Mul(2, 3.5))
	require.Equal(t, 0.5, f.Div(1, 2))
	require.True(t, f.IsZero(0))
	require.False(t, f.IsZero(1e-300))
	require.True(t, f.Equal(1.25, 1.25))
}

func TestBuiltin_IntTruncates(t *testing.T) {
	t.Parallel()

	f := numeric.Builtin[int]{}
	require.Equal(t, 2, f.Div(7, 3))
	require.Equal(t, -3, f.FromInt(-3))
}

func TestDecimal_Arithmetic(t *testing.T) {
	t.Parallel()

	f := numeric.Decimal{}
	a := decimal.RequireFromString("1.5")
	b := decimal.RequireFromString("0.25")

	require.True(t, f.Add(a, b).Equal(decimal.RequireFromString("1.75")))
	require.True(t, f.Sub(a, b).Equal(decimal.RequireFromString("1.25")))
	require.True(t, f.Mul(a, b).Equal(decimal.RequireFromString("0.375")))
	require.True(t, f.Div(a, b).Equal(decimal.NewFromInt(6)))
	require.True(t, f.IsZero(f.Zero()))
	require.True(t, f.Equal(f.One(), f.FromInt(1)))

	// 1/3 keeps DecimalPrecision fractional digits.
	third := f.Div(f.One(), f.FromInt(3))
	require.Equal(t, int32(-numeric.DecimalPrecision), third.Exponent())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	fi, err := numeric.Lookup[int]()
	require.NoError(t, err)
	require.Equal(t, 4, fi.Mul(2, 2))

	ff, err := numeric.Lookup[float32]()
	require.NoError(t, err)
	require.Equal(t, float32(0.5), ff.Div(1, 2))

	fu, err := numeric.Lookup[uint8]()
	require.NoError(t, err)
	require.Equal(t, uint8(3), fu.Add(1, 2))

	fd, err := numeric.Lookup[decimal.Decimal]()
	require.NoError(t, err)
	require.True(t, fd.One().Equal(decimal.NewFromInt(1)))
}

func TestLookup_Unsupported(t *testing.T) {
	t.Parallel()

	type celsius float64

	_, err := numeric.Lookup[string]()
	require.ErrorIs(t, err, numeric.ErrUnsupportedScalar)

	_, err = numeric.Lookup[celsius]()
	require.ErrorIs(t, err, numeric.ErrUnsupportedScalar)

	// Named numeric types still get a field explicitly.
	var f numeric.Field[celsius] = numeric.Builtin[celsius]{}
	require.Equal(t, celsius(3), f.Add(1, 2))
}

func TestFieldOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, numeric.Builtin[int64]{}, numeric.FieldOf[int64]())
	require.Equal(t, numeric.Builtin[float32]{}, numeric.FieldOf[float32]())
	require.Equal(t, numeric.Decimal{}, numeric.FieldOf[decimal.Decimal]())
}

func TestFromDecimal(t *testing.T) {
	t.Parallel()

	d := decimal.RequireFromString("-0.75")
	require.True(t, numeric.FromDecimal[decimal.Decimal](d).Equal(d))
	require.Equal(t, -0.75, numeric.FromDecimal[float64](d))
	require.Equal(t, float32(-0.75), numeric.FromDecimal[float32](d))

	// Integers truncate toward zero.
	require.Equal(t, 0, numeric.FromDecimal[int](d))
	require.Equal(t, int8(-2), numeric.FromDecimal[int8](decimal.RequireFromString("-2.9")))
	require.Equal(t, int64(3), numeric.FromDecimal[int64](decimal.RequireFromString("3.99")))
}
