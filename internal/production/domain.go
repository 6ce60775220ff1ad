package production

import "time"

type Status string

const (
	StatusOK       Status = "OK"
	StatusShortage Status = "SHORTAGE"
	StatusError    Status = "ERROR"
)

type Shortage struct {
	IngredientID   int64
	IngredientName string
	UnitName       string
	Required       float64
	Available      float64
	Missing        float64
}

type ProduceRequest struct {
	ProductID    int64
	Quantity     int
	ProducedDate time.Time
}

type ProduceResult struct {
	Status  Status
	Message string
	BatchID *int64
	// Shortages lists the ingredients that block the run.
	Shortages []Shortage
}

type RefillRequest struct {
	IngredientID int64
	Qty          float64
	CreatedAt    time.Time
}

type RefillResult struct {
	Status   Status
	Message  string
	NewStock *float64
}
