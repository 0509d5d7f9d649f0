// Package codec gives variant values a self-describing binary wire form:
// an enum header carrying the discriminant, then the payload encoded under
// its own type tag. Decoding requires the same TypeSet the value was built
// over; the payload tag is cross-checked against the member's declared
// kind so a corrupted or mismatched buffer can never produce a value whose
// discriminant and payload disagree.
package codec

import (
	"bytes"
	"fmt"

	"github.com/variantworks/variant-go/pkg/variant"
	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// Marshal encodes a variant value. Only members with a wire kind encode;
// an opaque member fails with ErrOpaqueType before anything is written.
func Marshal(v *variant.Value) ([]byte, error) {
	if v == nil {
		return nil, variant.ErrNilValue
	}
	d := v.Type()
	if d.Kind() == schema.KindOpaque {
		return nil, fmt.Errorf("codec: marshal %s: %w", d, ErrOpaqueType)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteEnumHeader(uint32(v.Tag()))
	writePayload(w, d, v.Interface())
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("codec: marshal %s: %w", d, err)
	}
	return buf.Bytes(), nil
}

// writePayload emits the held value under the member's kind. The type
// assertions cannot fail: the value invariant guarantees the payload's
// dynamic type is exactly the member type the kind was derived from.
func writePayload(w *Writer, d schema.Descriptor, payload any) {
	switch d.Kind() {
	case schema.KindBool:
		w.WriteBool(payload.(bool))
	case schema.KindI8:
		w.WriteInt8(payload.(int8))
	case schema.KindU8:
		w.WriteUint8(payload.(uint8))
	case schema.KindI16:
		w.WriteInt16(payload.(int16))
	case schema.KindU16:
		w.WriteUint16(payload.(uint16))
	case schema.KindI32:
		w.WriteInt32(payload.(int32))
	case schema.KindU32:
		w.WriteUint32(payload.(uint32))
	case schema.KindI64:
		w.WriteInt64(payload.(int64))
	case schema.KindU64:
		w.WriteUint64(payload.(uint64))
	case schema.KindF32:
		w.WriteFloat32(payload.(float32))
	case schema.KindF64:
		w.WriteFloat64(payload.(float64))
	case schema.KindString:
		w.WriteString(payload.(string))
	case schema.KindBytes:
		w.WriteBytes(payload.([]byte))
	default:
		w.recordError(ErrOpaqueType)
	}
}
