package schema

import "errors"

var (
	ErrEmptyTypeSet  = errors.New("schema: type set must not be empty")
	ErrDuplicateType = errors.New("schema: duplicate type in set")
	ErrAmbiguousType = errors.New("schema: ambiguous members in set")
	ErrTypeMismatch  = errors.New("schema: type is not a member of the set")
	ErrUnknownKind   = errors.New("schema: unknown kind name")
)
