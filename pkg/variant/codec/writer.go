package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Writer encodes values into the tagged little-endian wire form. It wraps
// an io.Writer (typically a bytes.Buffer) and keeps the first error it
// hits; once an error is recorded every later write is a no-op, so call
// sites can emit a whole value and check Error once at the end.
type Writer struct {
	w            io.Writer
	err          error
	bytesWritten int
}

// NewWriter creates a Writer over w. A bytes.Buffer is the common choice.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bytes returns the written bytes if the underlying writer is a
// *bytes.Buffer, nil otherwise or after an error.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}
	if bb, ok := w.w.(*bytes.Buffer); ok {
		return bb.Bytes()
	}
	return nil
}

// Error returns the first error that occurred during writing, if any.
func (w *Writer) Error() error {
	return w.err
}

// BytesWritten returns the number of bytes successfully written so far.
func (w *Writer) BytesWritten() int {
	return w.bytesWritten
}

// recordError records the first error encountered.
func (w *Writer) recordError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// write pushes raw bytes through, accounting for them on success.
func (w *Writer) write(p []byte) {
	if w.err != nil || len(p) == 0 {
		return
	}
	n, err := w.w.Write(p)
	w.bytesWritten += n
	w.recordError(err)
}

// WriteTag writes a single wire tag byte.
func (w *Writer) WriteTag(tag byte) {
	w.write([]byte{tag})
}

// WriteBool encodes and writes a boolean value.
func (w *Writer) WriteBool(val bool) {
	if val {
		w.WriteTag(TagBoolTrue)
	} else {
		w.WriteTag(TagBoolFalse)
	}
}

// WriteUint8 encodes and writes a uint8 value.
func (w *Writer) WriteUint8(val uint8) {
	w.write([]byte{TagU8, val})
}

// WriteInt8 encodes and writes an int8 value.
func (w *Writer) WriteInt8(val int8) {
	w.write([]byte{TagI8, byte(val)})
}

func (w *Writer) writeUint16LE(val uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], val)
	w.write(buf[:])
}

func (w *Writer) writeUint32LE(val uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	w.write(buf[:])
}

func (w *Writer) writeUint64LE(val uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], val)
	w.write(buf[:])
}

// WriteUint16 encodes and writes a uint16 value.
func (w *Writer) WriteUint16(val uint16) {
	w.WriteTag(TagU16)
	w.writeUint16LE(val)
}

// WriteInt16 encodes and writes an int16 value.
func (w *Writer) WriteInt16(val int16) {
	w.WriteTag(TagI16)
	w.writeUint16LE(uint16(val))
}

// WriteUint32 encodes and writes a uint32 value.
func (w *Writer) WriteUint32(val uint32) {
	w.WriteTag(TagU32)
	w.writeUint32LE(val)
}

// WriteInt32 encodes and writes an int32 value.
func (w *Writer) WriteInt32(val int32) {
	w.WriteTag(TagI32)
	w.writeUint32LE(uint32(val))
}

// WriteUint64 encodes and writes a uint64 value.
func (w *Writer) WriteUint64(val uint64) {
	w.WriteTag(TagU64)
	w.writeUint64LE(val)
}

// WriteInt64 encodes and writes an int64 value.
func (w *Writer) WriteInt64(val int64) {
	w.WriteTag(TagI64)
	w.writeUint64LE(uint64(val))
}

// WriteFloat32 encodes and writes a float32 value.
// NaN and Inf are rejected: the wire form carries only ordered floats.
func (w *Writer) WriteFloat32(val float32) {
	if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
		w.recordError(ErrInvalidFloat)
		return
	}
	w.WriteTag(TagF32)
	w.writeUint32LE(math.Float32bits(val))
}

// WriteFloat64 encodes and writes a float64 value.
func (w *Writer) WriteFloat64(val float64) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		w.recordError(ErrInvalidFloat)
		return
	}
	w.WriteTag(TagF64)
	w.writeUint64LE(math.Float64bits(val))
}

// WriteString encodes and writes a string value, length-prefixed.
func (w *Writer) WriteString(val string) {
	if w.err != nil {
		return
	}
	if !utf8.ValidString(val) {
		w.recordError(ErrInvalidUTF8)
		return
	}
	if len(val) > MaxPayloadLen {
		w.recordError(ErrTooLarge)
		return
	}
	w.WriteTag(TagString)
	w.writeUint32LE(uint32(len(val)))
	w.write([]byte(val))
}

// WriteBytes encodes and writes a byte slice, length-prefixed.
func (w *Writer) WriteBytes(val []byte) {
	if w.err != nil {
		return
	}
	if len(val) > MaxPayloadLen {
		w.recordError(ErrTooLarge)
		return
	}
	w.WriteTag(TagBytes)
	w.writeUint32LE(uint32(len(val)))
	w.write(val)
}

// WriteEnumHeader writes TagEnum and the discriminant index. The caller is
// then responsible for writing the member's payload.
func (w *Writer) WriteEnumHeader(discriminant uint32) {
	w.WriteTag(TagEnum)
	w.writeUint32LE(discriminant)
}
