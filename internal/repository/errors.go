// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values let handlers distinguish failure
// scenarios and pick the right HTTP status without inspecting SQL errors.
package repository

import "errors"

// ErrEmailExists is returned by UserRepo.Create when the email is
// already registered.  Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already registered")

// ErrNotFound is returned when a requested record does not exist.
// Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
