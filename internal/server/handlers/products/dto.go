package products

const imageField = "image"

// POSTRequest is sent as multipart/form-data together with the image file.
type POSTRequest struct {
	Name          string  `json:"name"            form:"name"            validate:"required,min=1,max=50"`
	CategoryID    int64   `json:"category_id"     form:"category_id"     validate:"required,gt=0"`
	ShelfLifeDays int     `json:"shelf_life_days" form:"shelf_life_days" validate:"gte=0"`
	UnitPrice     float64 `json:"unit_price"      form:"unit_price"      validate:"gte=0"`
	ReorderPoint  int     `json:"reorder_point"   form:"reorder_point"   validate:"gte=0"`
}

type ProductResponse struct {
	POSTRequest

	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	ImageURL     string `json:"image_url"`
}
