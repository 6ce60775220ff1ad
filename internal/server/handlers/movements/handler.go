package movements

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/bakerypro/bakerypro/internal/movements"
	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	csvFileName  = "ingredient-movements.csv"
	xlsxFileName = "ingredient-movements.xlsx"
	mimeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	movementsSvc *movements.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(movementsSvc *movements.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		movementsSvc: movementsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/ingredient-movements", h.errorsHandler, validation.DecorateWithQueryEx(h.validator, h.list))
	r.Get("/ingredient-movements.csv", h.errorsHandler, validation.DecorateWithQueryEx(h.validator, h.csv))
	r.Get("/ingredient-movements.xlsx", h.errorsHandler, validation.DecorateWithQueryEx(h.validator, h.xlsx))
}

//	@Summary		List ingredient movements
//	@Description	Filtered and paginated ledger, newest first. Sums cover the whole filtered set.
//	@Tags			movements
//	@Produce		json
//	@Param			ingredient_id	query		int		false	"Ingredient ID"
//	@Param			from			query		string	false	"From date, inclusive (YYYY-MM-DD)"
//	@Param			to				query		string	false	"To date, inclusive (YYYY-MM-DD)"
//	@Param			page			query		int		false	"Page, starting at 1"
//	@Param			page_size		query		int		false	"Page size, at most 500"
//	@Success		200				{object}	PageResponse
//	@Router			/ingredient-movements [get]
func (h *Handler) list(c *fiber.Ctx, req *ListRequest) error {
	filter, err := toFilter(&req.FilterRequest)
	if err != nil {
		return err
	}

	page, err := h.movementsSvc.List(c.Context(), filter, req.Page, req.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list movements: %w", err)
	}

	return c.JSON(PageResponse{
		Rows: lo.Map(page.Rows, func(m movements.Movement, _ int) MovementResponse {
			return MovementResponse{
				ID:             m.ID,
				IngredientID:   m.IngredientID,
				IngredientName: m.IngredientName,
				UnitName:       m.UnitName,
				Type:           string(m.Type),
				Qty:            m.Qty,
				Date:           m.Date.Format(time.DateOnly),
			}
		}),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Pages:    page.Pages,
		Sums: SumsResponse{
			In:  page.Sums.In,
			Out: page.Sums.Out,
			Net: page.Sums.Net(),
		},
	})
}

//	@Summary	Export ingredient movements as CSV
//	@Tags		movements
//	@Produce	text/csv
//	@Success	200	{file}	file
//	@Router		/ingredient-movements.csv [get]
func (h *Handler) csv(c *fiber.Ctx, req *FilterRequest) error {
	filter, err := toFilter(req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if exportErr := h.movementsSvc.ExportCSV(c.Context(), filter, &buf); exportErr != nil {
		return fmt.Errorf("failed to export movements: %w", exportErr)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(csvFileName)
	return c.Send(buf.Bytes())
}

//	@Summary	Export ingredient movements as XLSX
//	@Tags		movements
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	file
//	@Router		/ingredient-movements.xlsx [get]
func (h *Handler) xlsx(c *fiber.Ctx, req *FilterRequest) error {
	filter, err := toFilter(req)
	if err != nil {
		return err
	}

	data, err := h.movementsSvc.ExportXLSX(c.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to export movements: %w", err)
	}

	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Attachment(xlsxFileName)
	return c.Send(data)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, movements.ErrInvalidRange) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func toFilter(req *FilterRequest) (movements.Filter, error) {
	from, err := validation.OptionalDate(req.From)
	if err != nil {
		return movements.Filter{}, err
	}

	to, err := validation.OptionalDate(req.To)
	if err != nil {
		return movements.Filter{}, err
	}

	filter := movements.Filter{From: from, To: to}
	if req.IngredientID > 0 {
		filter.IngredientID = lo.ToPtr(req.IngredientID)
	}

	return filter, nil
}
