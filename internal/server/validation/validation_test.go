package validation_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bakerypro/bakerypro/internal/server/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameRequest struct {
	Name string `json:"name" query:"name" validate:"required,max=5"`
}

type rangeRequest struct {
	From int `query:"from"`
	To   int `query:"to"`
}

func (r *rangeRequest) Validate() error {
	if r.From > r.To {
		return errors.New("from is after to")
	}
	return nil
}

func newApp() *fiber.App {
	v := validator.New()
	app := fiber.New()

	app.Post("/body", validation.DecorateWithBodyEx(v, func(c *fiber.Ctx, req *nameRequest) error {
		return c.SendString(req.Name)
	}))
	app.Get("/range", validation.DecorateWithQueryEx(v, func(c *fiber.Ctx, _ *rangeRequest) error {
		return c.SendStatus(fiber.StatusNoContent)
	}))
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := validation.ParamID(c, "id")
		if err != nil {
			return err
		}
		return c.JSON(id)
	})

	return app
}

func TestDecorators(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		req    *http.Request
		status int
		body   string
	}{
		{
			name:   "valid body",
			req:    jsonRequest("/body", `{"name":"bun"}`),
			status: fiber.StatusOK,
			body:   "bun",
		},
		{
			name:   "tag violation",
			req:    jsonRequest("/body", `{"name":"baguette"}`),
			status: fiber.StatusBadRequest,
		},
		{
			name:   "malformed body",
			req:    jsonRequest("/body", `{"name":`),
			status: fiber.StatusBadRequest,
		},
		{
			name:   "custom rule",
			req:    httptest.NewRequest(http.MethodGet, "/range?from=5&to=1", nil),
			status: fiber.StatusBadRequest,
		},
		{
			name:   "valid query",
			req:    httptest.NewRequest(http.MethodGet, "/range?from=1&to=5", nil),
			status: fiber.StatusNoContent,
		},
		{
			name:   "positive id",
			req:    httptest.NewRequest(http.MethodGet, "/items/7", nil),
			status: fiber.StatusOK,
			body:   "7",
		},
		{
			name:   "non numeric id",
			req:    httptest.NewRequest(http.MethodGet, "/items/abc", nil),
			status: fiber.StatusBadRequest,
		},
		{
			name:   "zero id",
			req:    httptest.NewRequest(http.MethodGet, "/items/0", nil),
			status: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.body != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func jsonRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestOptionalDate(t *testing.T) {
	got, err := validation.OptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = validation.OptionalDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", got.Format("2006-01-02"))

	_, err = validation.OptionalDate("28/02/2025")
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
}
