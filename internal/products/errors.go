package products

import "errors"

var (
	ErrNotFound         = errors.New("product not found")
	ErrImageRequired    = errors.New("product image is required")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrInUse            = errors.New("product has production batches")
)
