package movements

import "errors"

var ErrInvalidRange = errors.New("from date is after to date")
