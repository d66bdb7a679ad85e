package mode

import "errors"

var (
	ErrReservedPriority = errors.New("mode: priority is reserved for system modes")
	ErrDuplicateMode    = errors.New("mode: duplicate mode name")
	ErrDuplicateEntry   = errors.New("mode: mode id already claimed")
	ErrNoFactory        = errors.New("mode: descriptor has no hook factory")
	ErrNoAddEntityMode  = errors.New("mode: AddEntityMode hook is required")
	ErrUnknownMode      = errors.New("mode: unknown mode")
	ErrNilOwner         = errors.New("mode: nil owner")
)
