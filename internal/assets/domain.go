package assets

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryProducts    Category = "products"
	CategoryIngredients Category = "ingredients"
)

func (c Category) Valid() bool {
	return c == CategoryProducts || c == CategoryIngredients
}

// Singular is used in commit messages, e.g. "product".
func (c Category) Singular() string {
	return strings.TrimSuffix(string(c), "s")
}

// Asset is an image committed to the image repository.
type Asset struct {
	Category Category
	FileName string
	// Path is relative to the working copy root, slash separated.
	Path string
	URL  string

	Message   string
	Commit    string
	CreatedAt time.Time
}
