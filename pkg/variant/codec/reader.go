package codec

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Reader decodes the tagged little-endian wire form. It wraps an io.Reader
// (typically a bytes.Reader) and keeps the first error it hits; once an
// error is recorded every later read fails fast with it.
type Reader struct {
	r         io.Reader
	err       error
	bytesRead int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Error returns the first error that occurred during reading, if any.
func (r *Reader) Error() error {
	return r.err
}

// BytesRead returns the number of bytes successfully consumed so far.
func (r *Reader) BytesRead() int {
	return r.bytesRead
}

// recordError records the first error encountered.
func (r *Reader) recordError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// read fills p, accounting for consumed bytes. A short read surfaces as
// ErrBufferTooSmall: the wire form is length-framed, so truncation is a
// caller bug, not a retryable condition.
func (r *Reader) read(p []byte) error {
	if r.err != nil {
		return r.err
	}
	n, err := io.ReadFull(r.r, p)
	r.bytesRead += n
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = ErrBufferTooSmall
	}
	r.recordError(err)
	return err
}

// ReadTag reads and returns the next wire tag byte.
func (r *Reader) ReadTag() (byte, error) {
	var b [1]byte
	if err := r.read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool interprets a pre-read tag as a boolean.
func (r *Reader) ReadBool(tag byte) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	switch tag {
	case TagBoolFalse:
		return false, nil
	case TagBoolTrue:
		return true, nil
	default:
		r.recordError(ErrInvalidTag)
		return false, r.err
	}
}

// ReadUint8 decodes a uint8 payload. The tag must already be consumed;
// the same holds for every payload reader below.
func (r *Reader) ReadUint8() (uint8, error) {
	var b [1]byte
	if err := r.read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 decodes an int8 payload.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) readUint16LE() (uint16, error) {
	var buf [2]byte
	if err := r.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (r *Reader) readUint32LE() (uint32, error) {
	var buf [4]byte
	if err := r.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (r *Reader) readUint64LE() (uint64, error) {
	var buf [8]byte
	if err := r.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadUint16 decodes a uint16 payload.
func (r *Reader) ReadUint16() (uint16, error) {
	return r.readUint16LE()
}

// ReadInt16 decodes an int16 payload.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.readUint16LE()
	return int16(v), err
}

// ReadUint32 decodes a uint32 payload.
func (r *Reader) ReadUint32() (uint32, error) {
	return r.readUint32LE()
}

// ReadInt32 decodes an int32 payload.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.readUint32LE()
	return int32(v), err
}

// ReadUint64 decodes a uint64 payload.
func (r *Reader) ReadUint64() (uint64, error) {
	return r.readUint64LE()
}

// ReadInt64 decodes an int64 payload.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.readUint64LE()
	return int64(v), err
}

// ReadFloat32 decodes a float32 payload, rejecting NaN and Inf.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.readUint32LE()
	if err != nil {
		return 0, err
	}
	v := math.Float32frombits(bits)
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		r.recordError(ErrInvalidFloat)
		return 0, r.err
	}
	return v, nil
}

// ReadFloat64 decodes a float64 payload, rejecting NaN and Inf.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.readUint64LE()
	if err != nil {
		return 0, err
	}
	v := math.Float64frombits(bits)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.recordError(ErrInvalidFloat)
		return 0, r.err
	}
	return v, nil
}

// ReadString decodes a length-prefixed string payload.
func (r *Reader) ReadString() (string, error) {
	data, err := r.ReadBytesPayload()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		r.recordError(ErrInvalidUTF8)
		return "", r.err
	}
	return string(data), nil
}

// ReadBytesPayload decodes a length-prefixed byte slice payload.
func (r *Reader) ReadBytesPayload() ([]byte, error) {
	size, err := r.readUint32LE()
	if err != nil {
		return nil, err
	}
	if int(size) > MaxPayloadLen {
		r.recordError(ErrTooLarge)
		return nil, r.err
	}
	if size == 0 {
		return []byte{}, nil
	}
	data := make([]byte, size)
	if err := r.read(data); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadEnumHeader reads TagEnum and returns the discriminant index.
func (r *Reader) ReadEnumHeader() (uint32, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return 0, err
	}
	if tag != TagEnum {
		r.recordError(ErrInvalidTag)
		return 0, r.err
	}
	return r.readUint32LE()
}
