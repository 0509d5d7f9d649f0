package variant

// Dispatch invokes the one handler matching the value's current member and
// returns its result. The handler set must have been built over the same
// TypeSet the value was constructed over, and must be complete; both are
// verified before any handler runs, so a failed Dispatch never executes
// caller code. Selection is a single slice index by discriminant — no
// scanning, no fallback chain, no default case.
func Dispatch[R any](v *Value, h *Handlers[R]) (R, error) {
	var zero R
	if v == nil {
		return zero, ErrNilValue
	}
	if h == nil || h.set == nil {
		return zero, ErrNilTypeSet
	}
	if h.set != v.set {
		return zero, ErrForeignHandlers
	}
	if err := h.Complete(); err != nil {
		return zero, err
	}
	return h.fns[v.tag](v.payload), nil
}
