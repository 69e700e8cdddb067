package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to act on the resource.
// Kept distinct from ErrNotFound: a well-formed id owned by someone else is a 403, not a 404.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransactionID indicates a transaction identifier that did not parse as a UUID.
// Kept distinct from ErrNotFound: a malformed id is a 400.
var ErrInvalidTransactionID = errors.New("invalid transaction ID")
