package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrEquipmentNotFound       = errors.New("equipment not found")
	ErrEquipmentUnavailable    = errors.New("equipment not available")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
