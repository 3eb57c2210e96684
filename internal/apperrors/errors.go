package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that an operation was invoked on a document whose
// type or workflow status does not permit it.
var ErrInvalidState = errors.New("invalid document state for operation")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the requesting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")
