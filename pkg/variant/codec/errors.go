package codec

import "errors"

var (
	ErrInvalidTag     = errors.New("codec: invalid type tag")
	ErrKindMismatch   = errors.New("codec: payload tag does not match declared kind")
	ErrOpaqueType     = errors.New("codec: type has no wire form")
	ErrInvalidUTF8    = errors.New("codec: invalid utf8 string")
	ErrInvalidFloat   = errors.New("codec: invalid float value (NaN or Inf)")
	ErrTooLarge       = errors.New("codec: payload too large")
	ErrTrailingBytes  = errors.New("codec: trailing bytes after value")
	ErrBufferTooSmall = errors.New("codec: buffer too small")
)
