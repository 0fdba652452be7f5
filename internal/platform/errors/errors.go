package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrNoPlan          = errors.New("no weekly plan generated")
)
