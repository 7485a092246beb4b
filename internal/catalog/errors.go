package catalog

import "errors"

var (
	ErrNotFound   = errors.New("event not found")
	ErrValidation = errors.New("invalid input")
)
