package recipes

import "errors"

var (
	ErrNotFound          = errors.New("recipe line not found")
	ErrDuplicate         = errors.New("ingredient is already in the recipe")
	ErrReferenceNotFound = errors.New("product or ingredient does not exist")
)
