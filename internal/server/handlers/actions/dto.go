package actions

type ProduceRequest struct {
	ProductID    int64  `json:"product_id"    form:"product_id"    validate:"required,gt=0"`
	Quantity     int    `json:"quantity"      form:"quantity"      validate:"required,gt=0"`
	ProducedDate string `json:"produced_date" form:"produced_date" validate:"omitempty,datetime=2006-01-02"`
}

type ShortageResponse struct {
	IngredientID   int64   `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	UnitName       string  `json:"unit_name"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
	Missing        float64 `json:"missing"`
}

type ProduceResponse struct {
	Status    string             `json:"status"`
	Message   string             `json:"message"`
	BatchID   *int64             `json:"batch_id,omitempty"`
	Shortages []ShortageResponse `json:"shortages"`
}

type RefillRequest struct {
	IngredientID int64   `json:"ingredient_id" form:"ingredient_id" validate:"required,gt=0"`
	Qty          float64 `json:"qty"           form:"qty"           validate:"required,gt=0"`
	CreatedAt    string  `json:"created_at"    form:"created_at"    validate:"omitempty,datetime=2006-01-02"`
}

type RefillResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	NewStock *float64 `json:"new_stock,omitempty"`
}
