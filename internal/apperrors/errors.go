package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the signed-in user lacks the required capability,
// or that no user is signed in at all.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPersistence indicates a snapshot save or load failed. Callers log it and
// keep going; in-memory state stays authoritative for the rest of the run.
var ErrPersistence = errors.New("persistence error")
