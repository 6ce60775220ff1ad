package categories

import "errors"

var (
	ErrNotFound = errors.New("category not found")
	ErrInUse    = errors.New("category is used by products")
)
