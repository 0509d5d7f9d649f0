package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeSet is an ordered, fixed list of distinct member types. It is
// assembled once, validated at assembly, and never mutated afterwards, so
// it is safe for concurrent readers. Member order is declaration order and
// defines the discriminant numbering used by values built over the set.
type TypeSet struct {
	members []Descriptor
	index   map[reflect.Type]int
}

// NewTypeSet validates the member list and builds a set from it.
// Rejections are final: an empty list, a repeated Go type, or one member
// assignable to an interface member all fail here, before any value can be
// constructed over the set.
func NewTypeSet(members ...Descriptor) (*TypeSet, error) {
	if len(members) == 0 {
		return nil, ErrEmptyTypeSet
	}
	index := make(map[reflect.Type]int, len(members))
	for i, d := range members {
		if !d.IsValid() {
			return nil, fmt.Errorf("schema: member %d is not a valid descriptor", i)
		}
		if prev, exists := index[d.rt]; exists {
			return nil, fmt.Errorf("schema: %s declared at %d and %d: %w", d, prev, i, ErrDuplicateType)
		}
		index[d.rt] = i
	}
	// A member that is assignable to an interface member would make two
	// handlers reachable for the same runtime value. Rejected here rather
	// than resolved by any priority order.
	for i, d := range members {
		for j, e := range members {
			if i == j || e.rt.Kind() != reflect.Interface {
				continue
			}
			if d.rt.AssignableTo(e.rt) {
				return nil, fmt.Errorf("schema: %s is assignable to %s: %w", d, e, ErrAmbiguousType)
			}
		}
	}
	return &TypeSet{members: append([]Descriptor(nil), members...), index: index}, nil
}

// MustTypeSet is NewTypeSet for statically known member lists.
func MustTypeSet(members ...Descriptor) *TypeSet {
	s, err := NewTypeSet(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of members.
func (s *TypeSet) Len() int {
	return len(s.members)
}

// At returns the member at discriminant index i.
func (s *TypeSet) At(i int) Descriptor {
	return s.members[i]
}

// Descriptors returns a copy of the member list in discriminant order.
func (s *TypeSet) Descriptors() []Descriptor {
	return append([]Descriptor(nil), s.members...)
}

// Contains reports whether the descriptor's Go type is a member.
func (s *TypeSet) Contains(d Descriptor) bool {
	_, ok := s.index[d.rt]
	return ok
}

// IndexOfType returns the discriminant index for an exact Go type.
func (s *TypeSet) IndexOfType(rt reflect.Type) (int, bool) {
	i, ok := s.index[rt]
	return i, ok
}

// Resolve maps a runtime value onto its member's discriminant index. Exact
// dynamic-type members win via a single map lookup; failing that, a value
// implementing exactly one interface member matches it. Two interface
// matches is ErrAmbiguousType, none is ErrTypeMismatch.
func (s *TypeSet) Resolve(v any) (int, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return 0, fmt.Errorf("schema: untyped nil: %w", ErrTypeMismatch)
	}
	if i, ok := s.index[rt]; ok {
		return i, nil
	}
	match := -1
	for i, d := range s.members {
		if d.rt.Kind() != reflect.Interface || !rt.Implements(d.rt) {
			continue
		}
		if match >= 0 {
			return 0, fmt.Errorf("schema: %s matches both %s and %s: %w",
				rt, s.members[match], d, ErrAmbiguousType)
		}
		match = i
	}
	if match < 0 {
		return 0, fmt.Errorf("schema: %s: %w", rt, ErrTypeMismatch)
	}
	return match, nil
}

// String returns a string representation of the set.
func (s *TypeSet) String() string {
	names := make([]string, len(s.members))
	for i, d := range s.members {
		names[i] = d.String()
	}
	return fmt.Sprintf("TypeSet(%s)", strings.Join(names, ", "))
}
