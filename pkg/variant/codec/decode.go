package codec

import (
	"bytes"
	"fmt"

	"github.com/variantworks/variant-go/pkg/variant"
	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// kindTags maps each wire kind onto the payload tag byte it must carry.
// Bool is absent: it encodes as one of two tags and is handled apart.
var kindTags = map[schema.Kind]byte{
	schema.KindI8:     TagI8,
	schema.KindU8:     TagU8,
	schema.KindI16:    TagI16,
	schema.KindU16:    TagU16,
	schema.KindI32:    TagI32,
	schema.KindU32:    TagU32,
	schema.KindI64:    TagI64,
	schema.KindU64:    TagU64,
	schema.KindF32:    TagF32,
	schema.KindF64:    TagF64,
	schema.KindString: TagString,
	schema.KindBytes:  TagBytes,
}

// Unmarshal decodes buf into a value over the given set. The discriminant
// must index a member of the set, the payload tag must match that member's
// kind, and the buffer must hold exactly one value — trailing bytes fail
// with ErrTrailingBytes.
func Unmarshal(set *schema.TypeSet, buf []byte) (*variant.Value, error) {
	if set == nil {
		return nil, variant.ErrNilTypeSet
	}
	r := NewReader(bytes.NewReader(buf))
	idx, err := r.ReadEnumHeader()
	if err != nil {
		return nil, fmt.Errorf("codec: unmarshal header: %w", err)
	}
	if int(idx) >= set.Len() {
		return nil, fmt.Errorf("codec: discriminant %d out of range for %s: %w", idx, set, ErrInvalidTag)
	}
	d := set.At(int(idx))

	payload, err := readPayload(r, d)
	if err != nil {
		return nil, fmt.Errorf("codec: unmarshal %s: %w", d, err)
	}
	if r.BytesRead() != len(buf) {
		return nil, fmt.Errorf("codec: %d of %d bytes consumed: %w", r.BytesRead(), len(buf), ErrTrailingBytes)
	}
	v, err := variant.New(set, payload)
	if err != nil {
		// Cannot happen for a validated set: the payload was decoded as the
		// member's own type. Surfaced anyway rather than trusted.
		return nil, fmt.Errorf("codec: unmarshal %s: %w", d, err)
	}
	return v, nil
}

// readPayload decodes one payload under the member's declared kind,
// cross-checking the payload tag against it.
func readPayload(r *Reader, d schema.Descriptor) (any, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}

	if d.Kind() == schema.KindBool {
		return r.ReadBool(tag)
	}
	want, ok := kindTags[d.Kind()]
	if !ok {
		return nil, ErrOpaqueType
	}
	if tag != want {
		return nil, fmt.Errorf("codec: tag 0x%02X where %s expects 0x%02X: %w", tag, d, want, ErrKindMismatch)
	}

	switch d.Kind() {
	case schema.KindI8:
		return r.ReadInt8()
	case schema.KindU8:
		return r.ReadUint8()
	case schema.KindI16:
		return r.ReadInt16()
	case schema.KindU16:
		return r.ReadUint16()
	case schema.KindI32:
		return r.ReadInt32()
	case schema.KindU32:
		return r.ReadUint32()
	case schema.KindI64:
		return r.ReadInt64()
	case schema.KindU64:
		return r.ReadUint64()
	case schema.KindF32:
		return r.ReadFloat32()
	case schema.KindF64:
		return r.ReadFloat64()
	case schema.KindString:
		return r.ReadString()
	case schema.KindBytes:
		return r.ReadBytesPayload()
	default:
		return nil, ErrOpaqueType
	}
}
