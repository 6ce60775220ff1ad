package ingredients

import (
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/ingredients"
	"github.com/bakerypro/bakerypro/internal/server/upload"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	ingredientsSvc *ingredients.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(ingredientsSvc *ingredients.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		ingredientsSvc: ingredientsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/ingredients")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary	List ingredients
//	@Tags		ingredients
//	@Produce	json
//	@Success	200	{array}	IngredientResponse
//	@Router		/ingredients [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.ingredientsSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list ingredients: %w", err)
	}

	return c.JSON(lo.Map(items, func(item ingredients.Ingredient, _ int) IngredientResponse {
		return toResponse(&item)
	}))
}

//	@Summary		Create an ingredient
//	@Description	The image is committed to the image repository and its public URL is stored on the ingredient.
//	@Tags			ingredients
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Ingredient photo"
//	@Success		201		{object}	IngredientResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/ingredients [post]
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	image, err := upload.Read(c, imageField)
	if err != nil {
		return err
	}

	ingredient, err := h.ingredientsSvc.Create(c.Context(), toDraft(req), toImage(image))
	if err != nil {
		return fmt.Errorf("failed to create ingredient: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(ingredient))
}

//	@Summary	Get an ingredient
//	@Tags		ingredients
//	@Produce	json
//	@Param		id	path		int	true	"Ingredient ID"
//	@Success	200	{object}	IngredientResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/ingredients/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	ingredient, err := h.ingredientsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get ingredient: %w", err)
	}

	return c.JSON(toResponse(ingredient))
}

//	@Summary		Update an ingredient
//	@Description	Sending an image replaces the current one.
//	@Tags			ingredients
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Ingredient ID"
//	@Param			image	formData	file	false	"New ingredient photo"
//	@Success		200		{object}	IngredientResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/ingredients/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *POSTRequest) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	image, err := upload.Read(c, imageField)
	if err != nil {
		return err
	}

	ingredient, err := h.ingredientsSvc.Update(c.Context(), id, toDraft(req), toImage(image))
	if err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}

	return c.JSON(toResponse(ingredient))
}

//	@Summary	Delete an ingredient
//	@Tags		ingredients
//	@Param		id	path	int	true	"Ingredient ID"
//	@Success	204
//	@Failure	409	{object}	fiberfx.ErrorResponse
//	@Router		/ingredients/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	if delErr := h.ingredientsSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete ingredient: %w", delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ingredients.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ingredients.ErrImageRequired),
		errors.Is(err, assets.ErrEmptyContent):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ingredients.ErrInUse):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, assets.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func toDraft(req *POSTRequest) ingredients.IngredientDraft {
	return ingredients.IngredientDraft{
		Name:         req.Name,
		UnitName:     req.UnitName,
		StockQty:     req.StockQty,
		ReorderPoint: req.ReorderPoint,
	}
}

func toImage(file *upload.File) *ingredients.Image {
	if file == nil {
		return nil
	}

	return &ingredients.Image{
		Content:     file.Content,
		ContentType: file.ContentType,
	}
}

func toResponse(ingredient *ingredients.Ingredient) IngredientResponse {
	return IngredientResponse{
		POSTRequest: POSTRequest{
			Name:         ingredient.Name,
			UnitName:     ingredient.UnitName,
			StockQty:     ingredient.StockQty,
			ReorderPoint: ingredient.ReorderPoint,
		},
		ID:       ingredient.ID,
		ImageURL: ingredient.ImageURL,
		IsLow:    ingredient.IsLow,
	}
}
