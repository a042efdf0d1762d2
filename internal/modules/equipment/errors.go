package equipment

import "errors"

var (
	ErrNotFound        = errors.New("equipment not found")
	ErrValidation      = errors.New("validation error")
	ErrInvalidQuantity = errors.New("available count out of range")
)
