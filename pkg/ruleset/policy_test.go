package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

type auditedQuantity int32

func (auditedQuantity) Rules() ruleset.Int32 {
	return ruleset.Int32{
		Adjust:   ruleset.AdjustNumber{Floor: ruleset.Ptr(0.0)},
		Validate: ruleset.ValidateNumber{Min: ruleset.Ptr(10.0)},
		Policy:   ruleset.DebugOnly,
	}
}

type strictQuantity int32

func (strictQuantity) Rules() ruleset.Int32 {
	return ruleset.Int32{
		Validate: ruleset.ValidateNumber{Min: ruleset.Ptr(10.0)},
		Policy:   ruleset.DebugOnly,
	}
}

// Deliberately not parallel: it flips the process-wide debug toggle, and the
// compiled-once semantics under test depend on the order of the steps below.
func TestDebugOnlyPolicy(t *testing.T) {
	relaxed, err := ruleset.ForInt32[auditedQuantity]()
	require.NoError(t, err)

	// Validations were skipped at compile time, so an undersized value
	// passes straight through.
	got, err := relaxed(3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got)

	// Adjustments are not policy-gated and still run.
	got, err = relaxed(-5)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got)

	ruleset.SetDebugChecks(true)
	defer ruleset.SetDebugChecks(false)

	strict, err := ruleset.ForInt32[strictQuantity]()
	require.NoError(t, err)
	_, err = strict(3)
	require.Error(t, err)
	assert.EqualError(t, err, "3 < 10")
	got, err = strict(42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)

	// The relaxed rule set was baked before the toggle flipped and keeps
	// its permissive behavior.
	got, err = relaxed(3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got)

	ruleset.SetDebugChecks(false)

	// Likewise the strict rule set stays strict after disabling the toggle.
	_, err = strict(3)
	require.Error(t, err)
	assert.EqualError(t, err, "3 < 10")
}
