package actions

import (
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/production"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	productionSvc *production.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(productionSvc *production.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		productionSvc: productionSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Post("/produce", h.errorsHandler, validation.DecorateWithBodyEx(h.validator, h.produce))
	r.Post("/refill", h.errorsHandler, validation.DecorateWithBodyEx(h.validator, h.refill))
}

//	@Summary		Produce a batch
//	@Description	Consumes ingredients by recipe. When stock is insufficient the status is SHORTAGE and the missing ingredients are listed.
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProduceRequest	true	"Production run"
//	@Success		200		{object}	ProduceResponse
//	@Router			/produce [post]
func (h *Handler) produce(c *fiber.Ctx, req *ProduceRequest) error {
	producedDate, err := validation.OptionalDate(req.ProducedDate)
	if err != nil {
		return err
	}

	run := production.ProduceRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if producedDate != nil {
		run.ProducedDate = *producedDate
	}

	result, err := h.productionSvc.Produce(c.Context(), run)
	if err != nil {
		return fmt.Errorf("failed to produce: %w", err)
	}

	return c.JSON(ProduceResponse{
		Status:  string(result.Status),
		Message: result.Message,
		BatchID: result.BatchID,
		Shortages: lo.Map(result.Shortages, func(s production.Shortage, _ int) ShortageResponse {
			return ShortageResponse{
				IngredientID:   s.IngredientID,
				IngredientName: s.IngredientName,
				UnitName:       s.UnitName,
				Required:       s.Required,
				Available:      s.Available,
				Missing:        s.Missing,
			}
		}),
	})
}

//	@Summary	Refill an ingredient
//	@Tags		actions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RefillRequest	true	"Refill"
//	@Success	200		{object}	RefillResponse
//	@Router		/refill [post]
func (h *Handler) refill(c *fiber.Ctx, req *RefillRequest) error {
	createdAt, err := validation.OptionalDate(req.CreatedAt)
	if err != nil {
		return err
	}

	refill := production.RefillRequest{
		IngredientID: req.IngredientID,
		Qty:          req.Qty,
	}
	if createdAt != nil {
		refill.CreatedAt = *createdAt
	}

	result, err := h.productionSvc.Refill(c.Context(), refill)
	if err != nil {
		return fmt.Errorf("failed to refill: %w", err)
	}

	return c.JSON(RefillResponse{
		Status:   string(result.Status),
		Message:  result.Message,
		NewStock: result.NewStock,
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, production.ErrInvalidQuantity) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
