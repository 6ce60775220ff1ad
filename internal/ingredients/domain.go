package ingredients

type IngredientDraft struct {
	Name         string
	UnitName     string
	StockQty     float64
	ReorderPoint float64
}

type Ingredient struct {
	IngredientDraft

	ID       int64
	ImageURL string
	// IsLow is set when the stock is at or below the reorder point.
	IsLow bool
}

type Image struct {
	Content     []byte
	ContentType string
}

func (i *Image) empty() bool {
	return i == nil || len(i.Content) == 0
}
