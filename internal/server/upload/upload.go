package upload

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// File is an uploaded form file read into memory.
type File struct {
	Content     []byte
	ContentType string
}

// Read returns the file sent in field, or nil when the field is absent or empty.
func Read(c *fiber.Ctx, field string) (*File, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
		return nil, nil //nolint:nilnil //absent file is not an error
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s upload: %s", field, err))
	}
	if header.Size == 0 {
		return nil, nil //nolint:nilnil //empty file is treated as absent
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &File{
		Content:     content,
		ContentType: header.Header.Get(fiber.HeaderContentType),
	}, nil
}
