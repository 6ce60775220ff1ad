package categories

import (
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/categories"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	categoriesSvc *categories.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(categoriesSvc *categories.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		categoriesSvc: categoriesSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/categories")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.categoriesSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	return c.JSON(lo.Map(items, func(item categories.Category, _ int) CategoryResponse {
		return toResponse(&item)
	}))
}

//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		POSTRequest	true	"Category"
//	@Success	201			{object}	CategoryResponse
//	@Failure	400			{object}	fiberfx.ErrorResponse
//	@Router		/categories [post]
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	category, err := h.categoriesSvc.Create(c.Context(), req.Name)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(category))
}

//	@Summary	Get a category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/categories/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoriesSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}

	return c.JSON(toResponse(category))
}

//	@Summary	Rename a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int			true	"Category ID"
//	@Param		category	body		POSTRequest	true	"Category"
//	@Success	200			{object}	CategoryResponse
//	@Failure	404			{object}	fiberfx.ErrorResponse
//	@Router		/categories/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *POSTRequest) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoriesSvc.Update(c.Context(), id, req.Name)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return c.JSON(toResponse(category))
}

//	@Summary	Delete a category
//	@Tags		categories
//	@Param		id	path	int	true	"Category ID"
//	@Success	204
//	@Failure	409	{object}	fiberfx.ErrorResponse
//	@Router		/categories/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	if delErr := h.categoriesSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete category: %w", delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, categories.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, categories.ErrInUse):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func toResponse(category *categories.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
