package schema

import (
	"fmt"
	"reflect"
)

// Descriptor identifies one member type of a TypeSet. It pairs the Go type
// with its wire kind. Descriptors are immutable values; two descriptors are
// the same member exactly when their Go types are identical.
type Descriptor struct {
	kind Kind
	rt   reflect.Type
}

// builtinKinds maps the exact built-in Go types onto wire kinds. Named types
// with a built-in underlying type (`type UserID uint32`) are deliberately
// absent: they are distinct members and stay opaque on the wire.
var builtinKinds = map[reflect.Type]Kind{
	reflect.TypeOf(false):       KindBool,
	reflect.TypeOf(int8(0)):     KindI8,
	reflect.TypeOf(uint8(0)):    KindU8,
	reflect.TypeOf(int16(0)):    KindI16,
	reflect.TypeOf(uint16(0)):   KindU16,
	reflect.TypeOf(int32(0)):    KindI32,
	reflect.TypeOf(uint32(0)):   KindU32,
	reflect.TypeOf(int64(0)):    KindI64,
	reflect.TypeOf(uint64(0)):   KindU64,
	reflect.TypeOf(float32(0)):  KindF32,
	reflect.TypeOf(float64(0)):  KindF64,
	reflect.TypeOf(""):          KindString,
	reflect.TypeOf([]byte(nil)): KindBytes,
}

func fromReflect(rt reflect.Type) Descriptor {
	if k, ok := builtinKinds[rt]; ok {
		return Descriptor{kind: k, rt: rt}
	}
	return Descriptor{kind: KindOpaque, rt: rt}
}

// TypeFor returns the descriptor for an arbitrary Go type.
func TypeFor[T any]() Descriptor {
	return fromReflect(reflect.TypeFor[T]())
}

// Unit constructors -------------------------------------------------------

func BoolType() Descriptor   { return fromReflect(reflect.TypeOf(false)) }
func I8Type() Descriptor     { return fromReflect(reflect.TypeOf(int8(0))) }
func U8Type() Descriptor     { return fromReflect(reflect.TypeOf(uint8(0))) }
func I16Type() Descriptor    { return fromReflect(reflect.TypeOf(int16(0))) }
func U16Type() Descriptor    { return fromReflect(reflect.TypeOf(uint16(0))) }
func I32Type() Descriptor    { return fromReflect(reflect.TypeOf(int32(0))) }
func U32Type() Descriptor    { return fromReflect(reflect.TypeOf(uint32(0))) }
func I64Type() Descriptor    { return fromReflect(reflect.TypeOf(int64(0))) }
func U64Type() Descriptor    { return fromReflect(reflect.TypeOf(uint64(0))) }
func F32Type() Descriptor    { return fromReflect(reflect.TypeOf(float32(0))) }
func F64Type() Descriptor    { return fromReflect(reflect.TypeOf(float64(0))) }
func StringType() Descriptor { return fromReflect(reflect.TypeOf("")) }
func BytesType() Descriptor  { return fromReflect(reflect.TypeOf([]byte(nil))) }

// Kind returns the descriptor's wire kind.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// GoType returns the described Go type.
func (d Descriptor) GoType() reflect.Type {
	return d.rt
}

// IsValid returns whether the descriptor describes a type at all.
func (d Descriptor) IsValid() bool {
	return d.rt != nil
}

// Name returns the Go spelling of the described type.
func (d Descriptor) Name() string {
	if d.rt == nil {
		return "<invalid>"
	}
	return d.rt.String()
}

// String returns a string representation of the descriptor.
func (d Descriptor) String() string {
	if d.kind == KindOpaque {
		return fmt.Sprintf("opaque(%s)", d.Name())
	}
	return d.kind.String()
}

// Matches reports whether a runtime value belongs to this member. Concrete
// members match on identical dynamic type; interface members match any
// value whose type implements them.
func (d Descriptor) Matches(v any) bool {
	rt := reflect.TypeOf(v)
	if rt == nil || d.rt == nil {
		return false
	}
	if d.rt.Kind() == reflect.Interface {
		return rt.Implements(d.rt)
	}
	return rt == d.rt
}
