package valuekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit"
	"github.com/dmitrymomot/valuekit/pkg/constraint"
	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

type price valuekit.Decimal

func (price) Rules() ruleset.Decimal {
	return ruleset.Decimal{
		Validate: ruleset.ValidateDecimal{
			Min:        ruleset.Ptr("0.01"),
			MultipleOf: ruleset.Ptr("0.01"),
		},
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()

		d, err := valuekit.ParseDecimal[price]("19.99")
		require.NoError(t, err)
		assert.True(t, valuekit.DecimalEqual(d, constraint.MustDecimal("19.99")))
	})

	t.Run("sub-cent amount is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := valuekit.ParseDecimal[price]("10.005")
		require.Error(t, err)
		assert.EqualError(t, err, "new valuekit_test.price: 10.005 is not a multiple of 0.01")
		assert.True(t, constraint.IsViolation(err))
	})

	t.Run("below the minimum", func(t *testing.T) {
		t.Parallel()

		_, err := valuekit.ParseDecimal[price]("0.001")
		require.Error(t, err)
		assert.EqualError(t, err, "new valuekit_test.price: 0.001 < 0.01")
	})

	t.Run("unparseable input", func(t *testing.T) {
		t.Parallel()

		_, err := valuekit.ParseDecimal[price]("abc")
		require.Error(t, err)
		assert.ErrorContains(t, err, `parse decimal "abc"`)
		assert.False(t, constraint.IsViolation(err))
	})
}

func TestNewDecimal(t *testing.T) {
	t.Parallel()

	t.Run("result never aliases the input", func(t *testing.T) {
		t.Parallel()

		raw := constraint.MustDecimal("19.99")
		d, err := valuekit.NewDecimal[price](raw)
		require.NoError(t, err)
		assert.NotSame(t, raw, d)

		raw.SetInt64(5)
		assert.True(t, valuekit.DecimalEqual(d, constraint.MustDecimal("19.99")))
	})

	t.Run("violation reports the offending value", func(t *testing.T) {
		t.Parallel()

		_, err := valuekit.NewDecimal[price](constraint.MustDecimal("0"))
		require.Error(t, err)
		assert.EqualError(t, err, "new valuekit_test.price: 0 < 0.01")
	})
}

func TestMustParseDecimal(t *testing.T) {
	t.Parallel()

	d := valuekit.MustParseDecimal[price]("4.50")
	assert.True(t, valuekit.DecimalEqual(d, constraint.MustDecimal("4.5")))
	assert.Panics(t, func() { valuekit.MustParseDecimal[price]("10.005") })
}

func TestUnsafeDecimal(t *testing.T) {
	t.Parallel()

	raw := constraint.MustDecimal("0.005")
	d := valuekit.UnsafeDecimal[price](raw)
	assert.NotSame(t, raw, d)
	assert.True(t, valuekit.DecimalEqual(d, raw))
}

func TestMapDecimal(t *testing.T) {
	t.Parallel()

	t.Run("transform sees a private copy", func(t *testing.T) {
		t.Parallel()

		v := valuekit.MustParseDecimal[price]("19.99")
		got, err := valuekit.MapDecimal[price](v, func(d *valuekit.Decimal) *valuekit.Decimal {
			return d.SetInt64(7)
		})
		require.NoError(t, err)
		assert.True(t, valuekit.DecimalEqual(got, constraint.MustDecimal("7")))
		assert.True(t, valuekit.DecimalEqual(v, constraint.MustDecimal("19.99")))
	})

	t.Run("transform cannot escape the rules", func(t *testing.T) {
		t.Parallel()

		v := valuekit.MustParseDecimal[price]("19.99")
		_, err := valuekit.MapDecimal[price](v, func(d *valuekit.Decimal) *valuekit.Decimal {
			return constraint.MustDecimal("10.005")
		})
		require.Error(t, err)
		assert.EqualError(t, err, "new valuekit_test.price: 10.005 is not a multiple of 0.01")
	})
}

func TestDecimalEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "same digits", a: "1.5", b: "1.5", want: true},
		{name: "trailing zeros are insignificant", a: "1.5", b: "1.500", want: true},
		{name: "integer forms", a: "2", b: "2.000", want: true},
		{name: "different numbers", a: "1.5", b: "1.6", want: false},
		{name: "negative zero equals zero", a: "-0", b: "0", want: true},
		{name: "infinities of the same sign", a: "Infinity", b: "Infinity", want: true},
		{name: "infinities of opposite sign", a: "Infinity", b: "-Infinity", want: false},
		{name: "NaN never equals NaN", a: "NaN", b: "NaN", want: false},
		{name: "NaN never equals a number", a: "NaN", b: "1.5", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := constraint.MustDecimal(tt.a)
			b := constraint.MustDecimal(tt.b)
			assert.Equal(t, tt.want, valuekit.DecimalEqual(a, b))
		})
	}
}
