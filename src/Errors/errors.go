package Errors

import "strings"

// Domain error kinds surfaced by the services. The error middleware maps
// them to HTTP statuses; everything else is treated as an internal failure.

// ItemNotFound means a referenced id (the entity itself or a cross-referenced
// one, e.g. a parent comment) does not exist.
type ItemNotFound struct {
	Message string
}

func (e *ItemNotFound) Error() string {
	return e.Message
}

// ItemAlreadyExists means a uniqueness constraint on a name (role, tag,
// username) or on a pair (like) was violated on create or rename.
type ItemAlreadyExists struct {
	Message string
}

func (e *ItemAlreadyExists) Error() string {
	return e.Message
}

// ActionNotAllowed means the acting principal may not perform the mutation,
// or a domain rule was violated mid-patch (blank required field, immutable
// admin role, self-reputation, old-password mismatch).
type ActionNotAllowed struct {
	Message string
}

func (e *ActionNotAllowed) Error() string {
	return e.Message
}

// ValidationFailed carries the full set of violated-field messages collected
// before any domain rule runs.
type ValidationFailed struct {
	Violations []string
}

func (e *ValidationFailed) Error() string {
	return strings.Join(e.Violations, "; ")
}

func NotFound(msg string) error {
	return &ItemNotFound{Message: msg}
}

func AlreadyExists(msg string) error {
	return &ItemAlreadyExists{Message: msg}
}

func NotAllowed(msg string) error {
	return &ActionNotAllowed{Message: msg}
}
