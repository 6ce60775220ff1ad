package recipes

import (
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/recipes"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	recipesSvc *recipes.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(recipesSvc *recipes.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		recipesSvc: recipesSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/recipes")

	r.Use(h.errorsHandler)
	r.Get("/", validation.DecorateWithQueryEx(h.validator, h.list))
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Delete("/:id", h.delete)
}

//	@Summary	List recipe lines of a product
//	@Tags		recipes
//	@Produce	json
//	@Param		product_id	query	int	true	"Product ID"
//	@Success	200			{array}	LineResponse
//	@Router		/recipes [get]
func (h *Handler) list(c *fiber.Ctx, req *ListRequest) error {
	lines, err := h.recipesSvc.List(c.Context(), req.ProductID)
	if err != nil {
		return fmt.Errorf("failed to list recipe lines: %w", err)
	}

	return c.JSON(lo.Map(lines, func(line recipes.Line, _ int) LineResponse {
		return LineResponse{
			POSTRequest: POSTRequest{
				ProductID:    line.ProductID,
				IngredientID: line.IngredientID,
				QtyPerUnit:   line.QtyPerUnit,
			},
			ID:             line.ID,
			IngredientName: line.IngredientName,
			UnitName:       line.UnitName,
		}
	}))
}

//	@Summary	Add an ingredient to a recipe
//	@Tags		recipes
//	@Accept		json
//	@Produce	json
//	@Param		line	body		POSTRequest	true	"Recipe line"
//	@Success	201		{object}	LineResponse
//	@Failure	409		{object}	fiberfx.ErrorResponse
//	@Router		/recipes [post]
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	id, err := h.recipesSvc.Add(c.Context(), recipes.LineDraft{
		ProductID:    req.ProductID,
		IngredientID: req.IngredientID,
		QtyPerUnit:   req.QtyPerUnit,
	})
	if err != nil {
		return fmt.Errorf("failed to add recipe line: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(LineResponse{POSTRequest: *req, ID: id})
}

//	@Summary	Delete a recipe line
//	@Tags		recipes
//	@Param		id	path	int	true	"Recipe line ID"
//	@Success	204
//	@Router		/recipes/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	if delErr := h.recipesSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete recipe line: %w", delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, recipes.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, recipes.ErrReferenceNotFound):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, recipes.ErrDuplicate):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
