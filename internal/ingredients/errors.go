package ingredients

import "errors"

var (
	ErrNotFound      = errors.New("ingredient not found")
	ErrImageRequired = errors.New("ingredient image is required")
	ErrInUse         = errors.New("ingredient has stock movements")
)
