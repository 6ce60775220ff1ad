package products

type ProductDraft struct {
	Name          string
	CategoryID    int64
	ShelfLifeDays int
	UnitPrice     float64
	ReorderPoint  int
}

type Product struct {
	ProductDraft

	ID           int64
	CategoryName string
	ImageURL     string
}

// Image is an uploaded photo.
type Image struct {
	Content     []byte
	ContentType string
}

func (i *Image) empty() bool {
	return i == nil || len(i.Content) == 0
}
