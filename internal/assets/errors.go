package assets

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid asset category")
	ErrEmptyContent    = errors.New("asset content is empty")
	ErrForeignURL      = errors.New("url does not belong to the image repository")
	ErrNotConfigured   = errors.New("image repository is not configured")
	ErrNotFound        = errors.New("asset not found")
	ErrCommitFailed    = errors.New("failed to commit asset")
)
