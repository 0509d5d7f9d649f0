// Package variant implements a runtime tagged-union value: a container
// holding exactly one value drawn from a fixed schema.TypeSet, identified
// by a discriminant index, with exhaustiveness-checked dispatch over it.
//
// A Value is a single-owner container. Nothing here locks: if a Value is
// shared across goroutines the owner must serialize Assign and Dispatch
// externally, since both treat the discriminant/payload pair as one unit.
package variant

import (
	"fmt"
	"reflect"

	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// Value holds one value of one member type of a TypeSet, plus the
// discriminant index naming that member. The discriminant and the payload
// change only together, inside New and Assign; every other method is a
// pure read.
type Value struct {
	set     *schema.TypeSet
	tag     int
	payload any
}

// New constructs a Value over the given set from v. The dynamic type of v
// must resolve to exactly one member; otherwise construction fails with an
// error wrapping schema.ErrTypeMismatch (or schema.ErrAmbiguousType) and
// no Value exists.
func New(set *schema.TypeSet, v any) (*Value, error) {
	if set == nil {
		return nil, ErrNilTypeSet
	}
	tag, err := set.Resolve(v)
	if err != nil {
		return nil, fmt.Errorf("variant: construct from %T: %w", v, err)
	}
	return &Value{set: set, tag: tag, payload: v}, nil
}

// Assign replaces the held value with x, which must resolve to a member of
// the same set. The member may differ from the current one. On failure the
// previously held value stays untouched; on success the discriminant and
// payload are replaced in one step.
func (v *Value) Assign(x any) error {
	if v == nil {
		return ErrNilValue
	}
	tag, err := v.set.Resolve(x)
	if err != nil {
		return fmt.Errorf("variant: assign from %T: %w", x, err)
	}
	v.tag, v.payload = tag, x
	return nil
}

// Tag returns the discriminant index into the set.
func (v *Value) Tag() int {
	return v.tag
}

// Type returns the descriptor of the currently held member.
func (v *Value) Type() schema.Descriptor {
	return v.set.At(v.tag)
}

// TypeSet returns the set the value was constructed over.
func (v *Value) TypeSet() *schema.TypeSet {
	return v.set
}

// Interface returns the held value untyped. Prefer TryGet or Dispatch;
// this exists for codecs and diagnostics.
func (v *Value) Interface() any {
	return v.payload
}

// String returns a string representation of the value.
func (v *Value) String() string {
	if v == nil {
		return "Value(nil)"
	}
	return fmt.Sprintf("Value(%s: %v)", v.Type(), v.payload)
}

// TryGet returns the held value as T when the discriminant names exactly
// the member T, and the zero T with false otherwise. It never reinterprets
// a payload as a type the discriminant does not name.
func TryGet[T any](v *Value) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	if v.set.At(v.tag).GoType() != reflect.TypeFor[T]() {
		return zero, false
	}
	got, ok := v.payload.(T)
	if !ok {
		return zero, false
	}
	return got, true
}
