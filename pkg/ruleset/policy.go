package ruleset

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Policy decides when a rule declaration's validations are enforced.
type Policy uint8

const (
	// Enforce applies validations on every construction.
	Enforce Policy = iota

	// DebugOnly compiles validations only when debug checks are enabled.
	// When disabled, the corresponding constraints are never constructed,
	// so the declaration costs nothing per call. Adjustments always apply.
	DebugOnly
)

// enabled reports whether validations under this policy should compile.
func (p Policy) enabled() (bool, error) {
	switch p {
	case Enforce:
		return true, nil
	case DebugOnly:
		return debugChecksEnabled(), nil
	default:
		return false, fmt.Errorf("%w: unknown policy %d", ErrInvalidRuleSet, p)
	}
}

type debugConfig struct {
	Checks bool `env:"VALUEKIT_DEBUG_CHECKS" envDefault:"false"`
}

var (
	debugOnce  sync.Once
	debugState atomic.Bool
)

// debugChecksEnabled reports whether DebugOnly validations compile. The
// environment is consulted once, lazily, on the first compilation that
// needs it.
func debugChecksEnabled() bool {
	debugOnce.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok.
		_ = godotenv.Load()

		var cfg debugConfig
		if err := env.Parse(&cfg); err == nil {
			debugState.Store(cfg.Checks)
		}
	})
	return debugState.Load()
}

// SetDebugChecks overrides the VALUEKIT_DEBUG_CHECKS environment toggle.
// Call it before the first use of any type declared with the DebugOnly
// policy: the decision is baked into the cached constraint when the type's
// rules compile and is not revisited afterwards.
func SetDebugChecks(enabled bool) {
	debugOnce.Do(func() {})
	debugState.Store(enabled)
}
