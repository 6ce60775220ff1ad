package batches

import "time"

type Batch struct {
	ID           int64
	ProductID    int64
	ProductName  string
	Quantity     int
	ProducedDate time.Time
	ExpiryDate   time.Time
}
