package ingredients

const imageField = "image"

// POSTRequest is sent as multipart/form-data together with the image file.
type POSTRequest struct {
	Name         string  `json:"name"          form:"name"          validate:"required,min=1,max=50"`
	UnitName     string  `json:"unit_name"     form:"unit_name"     validate:"required,min=1,max=20"`
	StockQty     float64 `json:"stock_qty"     form:"stock_qty"     validate:"gte=0"`
	ReorderPoint float64 `json:"reorder_point" form:"reorder_point" validate:"gte=0"`
}

type IngredientResponse struct {
	POSTRequest

	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	IsLow    bool   `json:"is_low"`
}
