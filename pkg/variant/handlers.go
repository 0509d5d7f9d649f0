package variant

import (
	"fmt"
	"strings"

	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// Handlers is the per-dispatch handler set: one callable per member of a
// TypeSet, all returning R. Assembly is sticky-error: the first bad
// registration (a type outside the set, a second handler for the same
// member, a nil func) poisons the set, later calls are no-ops, and Err or
// Complete surfaces the error before any value is dispatched.
type Handlers[R any] struct {
	set *schema.TypeSet
	fns []func(any) R
	err error

	// complete caches a passing Complete() so the exhaustiveness check is
	// paid once per handler set, not once per dispatch.
	complete bool
}

// NewHandlers starts an empty handler set over the given type set.
func NewHandlers[R any](set *schema.TypeSet) *Handlers[R] {
	h := &Handlers[R]{set: set}
	if set == nil {
		h.err = ErrNilTypeSet
		return h
	}
	h.fns = make([]func(any) R, set.Len())
	return h
}

// recordError records the first error encountered during assembly.
func (h *Handlers[R]) recordError(err error) {
	if h.err == nil && err != nil {
		h.err = err
	}
}

// On registers fn as the handler for member type T and returns h so
// registrations chain. T must be spelled exactly as the member was
// declared: registering On[int64] against a set without i64 records
// ErrUnknownTypeHandler even if another integer member exists.
func On[T any, R any](h *Handlers[R], fn func(T) R) *Handlers[R] {
	if h.err != nil {
		return h
	}
	d := schema.TypeFor[T]()
	if fn == nil {
		h.recordError(fmt.Errorf("variant: handler for %s: %w", d, ErrNilHandler))
		return h
	}
	idx, ok := h.set.IndexOfType(d.GoType())
	if !ok {
		h.recordError(fmt.Errorf("variant: handler for %s: %w", d, ErrUnknownTypeHandler))
		return h
	}
	if h.fns[idx] != nil {
		h.recordError(fmt.Errorf("variant: handler for %s: %w", d, ErrDuplicateHandler))
		return h
	}
	h.fns[idx] = func(p any) R { return fn(p.(T)) }
	h.complete = false
	return h
}

// Err returns the first assembly error, if any.
func (h *Handlers[R]) Err() error {
	return h.err
}

// Complete verifies that every member of the type set has exactly one
// handler. A passing check is cached; a failing one reports every missing
// member at once so the caller fixes the set in one round.
func (h *Handlers[R]) Complete() error {
	if h.err != nil {
		return h.err
	}
	if h.complete {
		return nil
	}
	var missing []string
	for i, fn := range h.fns {
		if fn == nil {
			missing = append(missing, h.set.At(i).String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("variant: no handler for %s: %w",
			strings.Join(missing, ", "), ErrIncompleteHandlers)
	}
	h.complete = true
	return nil
}

// TypeSet returns the set the handlers were built over.
func (h *Handlers[R]) TypeSet() *schema.TypeSet {
	return h.set
}
