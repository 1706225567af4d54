package repository

import "errors"

// Failure classes shared by all repositories. Callers classify with errors.Is;
// anything that matches none of these is an internal storage failure.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("duplicate record")
)
