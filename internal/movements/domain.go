package movements

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 500
)

type Type string

const (
	TypeIn  Type = "I"
	TypeOut Type = "O"
)

// Movement is one entry of the append-only stock ledger.
type Movement struct {
	ID             int64
	IngredientID   int64
	IngredientName string
	UnitName       string
	Type           Type
	Qty            float64
	Date           time.Time
}

// Filter bounds are optional and inclusive; set fields are combined with AND.
type Filter struct {
	IngredientID *int64
	From         *time.Time
	To           *time.Time
}

type Sums struct {
	In  float64
	Out float64
}

// Net is the stock change over the filtered set.
func (s Sums) Net() float64 {
	return s.In - s.Out
}

type Page struct {
	Rows     []Movement
	Page     int
	PageSize int
	Total    int64
	Pages    int
	// Sums cover every row matching the filter, not only this page.
	Sums Sums
}

// NormalizePage applies defaults to non-positive values and caps the page size.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func pagesFor(total int64, pageSize int) int {
	return max(1, int(math.Ceil(float64(total)/float64(pageSize))))
}
