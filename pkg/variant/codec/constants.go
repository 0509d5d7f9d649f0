package codec

const (
	TagBoolFalse byte = 0x01
	TagBoolTrue  byte = 0x02
	TagU8        byte = 0x03
	TagI8        byte = 0x04
	TagU16       byte = 0x05
	TagI16       byte = 0x06
	TagU32       byte = 0x07
	TagI32       byte = 0x08
	TagU64       byte = 0x09
	TagI64       byte = 0x0A
	TagF32       byte = 0x0B
	TagF64       byte = 0x0C
	TagString    byte = 0x0D // length prefixed u32 LE
	TagBytes     byte = 0x0E // length prefixed u32 LE
	TagEnum      byte = 0x0F // discriminant u32 LE + payload

	MaxPayloadLen int = 1 << 20 // 1 MiB safety cap for strings/byte slices
)
