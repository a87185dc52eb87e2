package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
