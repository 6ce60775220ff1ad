package products

import (
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/products"
	"github.com/bakerypro/bakerypro/internal/server/upload"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	productsSvc *products.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(productsSvc *products.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		productsSvc: productsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/products")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.productsSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	return c.JSON(lo.Map(items, func(item products.Product, _ int) ProductResponse {
		return toResponse(&item)
	}))
}

//	@Summary		Create a product
//	@Description	The image is committed to the image repository and its public URL is stored on the product.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Product photo"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/products [post]
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	image, err := upload.Read(c, imageField)
	if err != nil {
		return err
	}

	product, err := h.productsSvc.Create(c.Context(), toDraft(req), toImage(image))
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(product))
}

//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/products/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	return c.JSON(toResponse(product))
}

//	@Summary		Update a product
//	@Description	Sending an image replaces the current one.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Product ID"
//	@Param			image	formData	file	false	"New product photo"
//	@Success		200		{object}	ProductResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/products/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *POSTRequest) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	image, err := upload.Read(c, imageField)
	if err != nil {
		return err
	}

	product, err := h.productsSvc.Update(c.Context(), id, toDraft(req), toImage(image))
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return c.JSON(toResponse(product))
}

//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	409	{object}	fiberfx.ErrorResponse
//	@Router		/products/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := validation.ParamID(c, "id")
	if err != nil {
		return err
	}

	if delErr := h.productsSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete product: %w", delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, products.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, products.ErrImageRequired),
		errors.Is(err, products.ErrCategoryNotFound),
		errors.Is(err, assets.ErrEmptyContent):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, products.ErrInUse):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, assets.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func toDraft(req *POSTRequest) products.ProductDraft {
	return products.ProductDraft{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		ShelfLifeDays: req.ShelfLifeDays,
		UnitPrice:     req.UnitPrice,
		ReorderPoint:  req.ReorderPoint,
	}
}

func toImage(file *upload.File) *products.Image {
	if file == nil {
		return nil
	}

	return &products.Image{
		Content:     file.Content,
		ContentType: file.ContentType,
	}
}

func toResponse(product *products.Product) ProductResponse {
	return ProductResponse{
		POSTRequest: POSTRequest{
			Name:          product.Name,
			CategoryID:    product.CategoryID,
			ShelfLifeDays: product.ShelfLifeDays,
			UnitPrice:     product.UnitPrice,
			ReorderPoint:  product.ReorderPoint,
		},
		ID:           product.ID,
		CategoryName: product.CategoryName,
		ImageURL:     product.ImageURL,
	}
}
