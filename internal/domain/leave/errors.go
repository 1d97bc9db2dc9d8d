package leave

import "errors"

var (
	ErrPermitNotFound     = errors.New("leave permit not found")
	ErrPermitAlreadyFiled = errors.New("a leave permit already exists for that date")
)
