package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrDNIExists          = errors.New("DNI already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrCannotChangeSelf   = errors.New("cannot change your own role or status")
	ErrNothingToUpdate    = errors.New("nothing to update")
)
