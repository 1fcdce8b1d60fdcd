package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func TestNewDecimal(t *testing.T) {
	t.Parallel()

	d, err := constraint.NewDecimal("0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.1", d.String())

	_, err = constraint.NewDecimal("not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse decimal "not-a-number"`)
}

func TestMustDecimal(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		constraint.MustDecimal("42.5")
	})
	assert.Panics(t, func() {
		constraint.MustDecimal("nope")
	})
}

func TestDecimalMin(t *testing.T) {
	t.Parallel()

	min := constraint.DecimalMin(constraint.MustDecimal("0.1"))

	t.Run("exactly at bound", func(t *testing.T) {
		t.Parallel()

		got, err := min(constraint.MustDecimal("0.1"))
		require.NoError(t, err)
		assert.Equal(t, "0.1", got.String())
	})

	t.Run("equal magnitude with different scale", func(t *testing.T) {
		t.Parallel()

		_, err := min(constraint.MustDecimal("0.10"))
		require.NoError(t, err)
	})

	t.Run("just below bound", func(t *testing.T) {
		t.Parallel()

		_, err := min(constraint.MustDecimal("0.099"))
		require.Error(t, err)
		assert.EqualError(t, err, "0.099 < 0.1")
		assert.True(t, constraint.IsViolation(err))
	})
}

func TestDecimalMax(t *testing.T) {
	t.Parallel()

	max := constraint.DecimalMax(constraint.MustDecimal("100"))

	_, err := max(constraint.MustDecimal("100"))
	require.NoError(t, err)

	_, err = max(constraint.MustDecimal("100.01"))
	require.Error(t, err)
	assert.EqualError(t, err, "100.01 > 100")
}

func TestDecimalStrictBounds(t *testing.T) {
	t.Parallel()

	gt := constraint.DecimalGreaterThan(constraint.MustDecimal("2"))
	_, err := gt(constraint.MustDecimal("2"))
	require.Error(t, err)
	assert.EqualError(t, err, "2 <= 2")

	_, err = gt(constraint.MustDecimal("2.000001"))
	require.NoError(t, err)

	lt := constraint.DecimalLessThan(constraint.MustDecimal("5"))
	_, err = lt(constraint.MustDecimal("5"))
	require.Error(t, err)
	assert.EqualError(t, err, "5 >= 5")

	_, err = lt(constraint.MustDecimal("4.999999"))
	require.NoError(t, err)
}

func TestDecimalSignChecks(t *testing.T) {
	t.Parallel()

	_, err := constraint.DecimalNotNegative()(constraint.MustDecimal("-0.01"))
	require.Error(t, err)
	assert.EqualError(t, err, "-0.01 < 0")

	_, err = constraint.DecimalNotNegative()(constraint.MustDecimal("0"))
	require.NoError(t, err)

	_, err = constraint.DecimalNotZero()(constraint.MustDecimal("0.00"))
	require.Error(t, err)
	assert.EqualError(t, err, "must not be zero")

	_, err = constraint.DecimalNotZero()(constraint.MustDecimal("0.01"))
	require.NoError(t, err)
}

func TestDecimalMultipleOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		increment string
		wantErr   string
	}{
		{name: "exact multiple", value: "15", increment: "5"},
		{name: "zero is a multiple", value: "0", increment: "5"},
		{name: "not a multiple", value: "13", increment: "5", wantErr: "13 is not a multiple of 5"},
		{name: "exact tenths", value: "0.3", increment: "0.1"},
		{name: "not a multiple of tenths", value: "0.25", increment: "0.1", wantErr: "0.25 is not a multiple of 0.1"},
		{name: "negative multiple", value: "-1.5", increment: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			check := constraint.DecimalMultipleOf(constraint.MustDecimal(tt.increment))
			got, err := check(constraint.MustDecimal(tt.value))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got.String())
		})
	}
}

func TestDecimalFloor(t *testing.T) {
	t.Parallel()

	bound := constraint.MustDecimal("2")
	floor := constraint.DecimalFloor(bound)

	t.Run("clamps up and never aliases the bound", func(t *testing.T) {
		t.Parallel()

		got, err := floor(constraint.MustDecimal("1"))
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(bound))
		assert.NotSame(t, bound, got)
	})

	t.Run("above bound unchanged", func(t *testing.T) {
		t.Parallel()

		in := constraint.MustDecimal("3")
		got, err := floor(in)
		require.NoError(t, err)
		assert.Same(t, in, got)
	})
}

func TestDecimalCeiling(t *testing.T) {
	t.Parallel()

	bound := constraint.MustDecimal("5")
	ceiling := constraint.DecimalCeiling(bound)

	got, err := ceiling(constraint.MustDecimal("6"))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(bound))
	assert.NotSame(t, bound, got)

	in := constraint.MustDecimal("4")
	got, err = ceiling(in)
	require.NoError(t, err)
	assert.Same(t, in, got)
}

func TestDecimalRoundTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		increment string
		expected  string
	}{
		{name: "already a multiple", value: "1.25", increment: "0.05", expected: "1.25"},
		{name: "rounds to nearest", value: "1.234", increment: "0.05", expected: "1.25"},
		{name: "rounds down below half", value: "1.02", increment: "0.05", expected: "1"},
		{name: "tie rounds away from zero", value: "1.225", increment: "0.05", expected: "1.25"},
		{name: "negative tie rounds away from zero", value: "-1.225", increment: "0.05", expected: "-1.25"},
		{name: "whole increments", value: "12.5", increment: "5", expected: "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			round := constraint.DecimalRoundTo(constraint.MustDecimal(tt.increment))
			in := constraint.MustDecimal(tt.value)
			got, err := round(in)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(constraint.MustDecimal(tt.expected)),
				"got %s, want %s", got, tt.expected)
			assert.Equal(t, tt.value, in.String(), "input must not be mutated")
		})
	}
}
