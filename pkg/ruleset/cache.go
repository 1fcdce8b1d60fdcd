package ruleset

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/cockroachdb/apd/v3"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// cache memoizes one composed constraint per wrapped type. Lookups are
// lock-free pointer loads. Publication never mutates the current map: a
// writer copies every entry into a fresh map, adds its own, and swaps the
// map pointer with a compare-and-swap, so readers never observe a torn
// state. Entries are added, never removed or replaced; the compiled
// constraint for a type depends only on its immutable rule declaration.
type cache[K any] struct {
	entries atomic.Pointer[map[reflect.Type]constraint.Constraint[K]]
}

func (c *cache[K]) lookup(key reflect.Type) (constraint.Constraint[K], bool) {
	m := c.entries.Load()
	if m == nil {
		return nil, false
	}
	fn, ok := (*m)[key]
	return fn, ok
}

// insert publishes fn for key. When a concurrent writer wins the race for
// the same key, its entry is adopted and fn is discarded; both were compiled
// from the same declaration, so they behave identically.
func (c *cache[K]) insert(key reflect.Type, fn constraint.Constraint[K]) constraint.Constraint[K] {
	for {
		old := c.entries.Load()
		size := 1
		if old != nil {
			if existing, ok := (*old)[key]; ok {
				return existing
			}
			size += len(*old)
		}
		next := make(map[reflect.Type]constraint.Constraint[K], size)
		if old != nil {
			for k, v := range *old {
				next[k] = v
			}
		}
		next[key] = fn
		if c.entries.CompareAndSwap(old, &next) {
			return fn
		}
	}
}

var (
	int32Cache   cache[int32]
	int64Cache   cache[int64]
	float64Cache cache[float64]
	decimalCache cache[*apd.Decimal]
	stringCache  cache[string]
)

// typeOf returns the stable identity for the type parameter, used only as
// a cache key.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ForInt32 returns the composed constraint for T, compiling it from the
// type's declared rules on first use and serving the cached result after.
// A malformed declaration fails with an error wrapping ErrInvalidRuleSet;
// failures are not cached, so each use reports the error anew.
func ForInt32[T Int32Rules]() (constraint.Constraint[int32], error) {
	key := typeOf[T]()
	if fn, ok := int32Cache.lookup(key); ok {
		return fn, nil
	}
	var decl T
	rules := decl.Rules()
	fn, err := compileInt[int32](rules.Adjust, rules.Validate, rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", key, err)
	}
	return int32Cache.insert(key, fn), nil
}

// ForInt64 is ForInt32 for int64-backed types.
func ForInt64[T Int64Rules]() (constraint.Constraint[int64], error) {
	key := typeOf[T]()
	if fn, ok := int64Cache.lookup(key); ok {
		return fn, nil
	}
	var decl T
	rules := decl.Rules()
	fn, err := compileInt[int64](rules.Adjust, rules.Validate, rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", key, err)
	}
	return int64Cache.insert(key, fn), nil
}

// ForFloat64 is ForInt32 for float64-backed types.
func ForFloat64[T Float64Rules]() (constraint.Constraint[float64], error) {
	key := typeOf[T]()
	if fn, ok := float64Cache.lookup(key); ok {
		return fn, nil
	}
	var decl T
	rules := decl.Rules()
	fn, err := compileFloat(rules.Adjust, rules.Validate, rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", key, err)
	}
	return float64Cache.insert(key, fn), nil
}

// ForDecimal is ForInt32 for decimal-backed types.
func ForDecimal[T DecimalRules]() (constraint.Constraint[*apd.Decimal], error) {
	key := typeOf[T]()
	if fn, ok := decimalCache.lookup(key); ok {
		return fn, nil
	}
	var decl T
	rules := decl.Rules()
	fn, err := compileDecimal(rules.Adjust, rules.Validate, rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", key, err)
	}
	return decimalCache.insert(key, fn), nil
}

// ForString is ForInt32 for string-backed types.
func ForString[T StringRules]() (constraint.Constraint[string], error) {
	key := typeOf[T]()
	if fn, ok := stringCache.lookup(key); ok {
		return fn, nil
	}
	var decl T
	rules := decl.Rules()
	fn, err := compileString(rules.Adjust, rules.Validate, rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules for %s: %w", key, err)
	}
	return stringCache.insert(key, fn), nil
}
