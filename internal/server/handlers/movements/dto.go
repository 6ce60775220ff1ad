package movements

type FilterRequest struct {
	IngredientID int64  `query:"ingredient_id" validate:"omitempty,gt=0"`
	From         string `query:"from"          validate:"omitempty,datetime=2006-01-02"`
	To           string `query:"to"            validate:"omitempty,datetime=2006-01-02"`
}

// ListRequest pages default to 1 and 20 when missing or not positive.
type ListRequest struct {
	FilterRequest

	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

type MovementResponse struct {
	ID             int64   `json:"id"`
	IngredientID   int64   `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	UnitName       string  `json:"unit_name"`
	Type           string  `json:"type"`
	Qty            float64 `json:"qty"`
	Date           string  `json:"date"`
}

type SumsResponse struct {
	In  float64 `json:"in"`
	Out float64 `json:"out"`
	Net float64 `json:"net"`
}

type PageResponse struct {
	Rows     []MovementResponse `json:"rows"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int64              `json:"total"`
	Pages    int                `json:"pages"`
	Sums     SumsResponse       `json:"sums"`
}
