package user

import "errors"

var (
	ErrInvalidRole              = errors.New("invalid role")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
	ErrInsufficientPermissions  = errors.New("insufficient permissions")
	ErrInactiveAccount          = errors.New("account is inactive")
)
