package schema

// Kind is the wire-level classification of a member type. The numeric order
// is part of nothing — descriptors are matched by Go type, never by Kind —
// but the names double as the spelling accepted in YAML declarations.
type Kind uint32

const (
	KindInvalid Kind = iota
	KindBool
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF32
	KindF64
	KindString
	KindBytes
	KindOpaque // any other Go type; described by reflection, no wire form
)

// String returns the declaration-file spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI8:
		return "i8"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}
