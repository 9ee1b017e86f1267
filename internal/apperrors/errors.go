package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientBalance indicates that a leave reservation would exceed the
// remaining balance for the user/type/year. Not retryable until the balance changes.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// ErrConflict indicates a state conflict, e.g. deciding a leave request that is
// already in a terminal status. The caller should re-read and retry the whole operation.
var ErrConflict = errors.New("conflicting state")
