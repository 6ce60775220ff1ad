package categories

// POSTRequest represents the request payload for creating or renaming a category.
type POSTRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1,max=50"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
