package variant

import "errors"

var (
	ErrIncompleteHandlers = errors.New("variant: handler set does not cover every member")
	ErrUnknownTypeHandler = errors.New("variant: handler type is not a member of the set")
	ErrDuplicateHandler   = errors.New("variant: duplicate handler for member")
	ErrForeignHandlers    = errors.New("variant: handler set was built for a different type set")
	ErrNilTypeSet         = errors.New("variant: nil type set")
	ErrNilHandler         = errors.New("variant: nil handler func")
	ErrNilValue           = errors.New("variant: nil value")
)
