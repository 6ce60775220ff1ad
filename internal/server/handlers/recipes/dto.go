package recipes

type ListRequest struct {
	ProductID int64 `query:"product_id" validate:"required,gt=0"`
}

type POSTRequest struct {
	ProductID    int64   `json:"product_id"    form:"product_id"    validate:"required,gt=0"`
	IngredientID int64   `json:"ingredient_id" form:"ingredient_id" validate:"required,gt=0"`
	QtyPerUnit   float64 `json:"qty_per_unit"  form:"qty_per_unit"  validate:"required,gt=0"`
}

type LineResponse struct {
	POSTRequest

	ID             int64  `json:"id"`
	IngredientName string `json:"ingredient_name,omitempty"`
	UnitName       string `json:"unit_name,omitempty"`
}
