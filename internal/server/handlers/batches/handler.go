package batches

import (
	"fmt"
	"time"

	"github.com/bakerypro/bakerypro/internal/batches"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type BatchResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	ProducedDate string `json:"produced_date"`
	ExpiryDate   string `json:"expiry_date"`
}

type Handler struct {
	batchesSvc *batches.Service
}

func NewHandler(batchesSvc *batches.Service) handler.Handler {
	return &Handler{
		batchesSvc: batchesSvc,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/batches", h.list)
}

//	@Summary	List production batches, newest first
//	@Tags		batches
//	@Produce	json
//	@Success	200	{array}	BatchResponse
//	@Router		/batches [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.batchesSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list batches: %w", err)
	}

	return c.JSON(lo.Map(items, func(b batches.Batch, _ int) BatchResponse {
		return BatchResponse{
			ID:           b.ID,
			ProductID:    b.ProductID,
			ProductName:  b.ProductName,
			Quantity:     b.Quantity,
			ProducedDate: b.ProducedDate.Format(time.DateOnly),
			ExpiryDate:   b.ExpiryDate.Format(time.DateOnly),
		}
	}))
}
