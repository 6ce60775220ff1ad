package production

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")
