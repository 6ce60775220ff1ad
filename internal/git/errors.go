package git

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid git configuration")
	ErrMissingRemote = fmt.Errorf("%w: remote url is required", ErrConfiguration)
	ErrMissingToken  = fmt.Errorf("%w: access token is required", ErrConfiguration)

	ErrInvalidRepository = errors.New("invalid repository")
	ErrCommitFailed      = errors.New("failed to commit")
	ErrPushFailed        = errors.New("failed to push")
	ErrWriteFailed       = errors.New("failed to write file")
	ErrInvalidPath       = errors.New("invalid path")
)
