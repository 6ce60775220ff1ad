package recipes

type LineDraft struct {
	ProductID    int64
	IngredientID int64
	QtyPerUnit   float64
}

// Line is the amount of one ingredient used per produced unit.
type Line struct {
	LineDraft

	ID             int64
	IngredientName string
	UnitName       string
}
