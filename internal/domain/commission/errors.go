package commission

import "errors"

var (
	ErrCommissionNotFound     = errors.New("commission not found")
	ErrDepartureAlreadyMarked = errors.New("departure already marked for this commission")
	ErrDepartureRequired      = errors.New("must mark departure before returning")
	ErrReturnAlreadyMarked    = errors.New("return already marked for this commission")
	ErrNotCommissionOwner     = errors.New("only the employee assigned to the commission can mark it")
)
