package repository

import "errors"

// ErrNoAvailableUnits is returned by the reserving create when the equipment
// row exists but every unit is already reserved.
var ErrNoAvailableUnits = errors.New("no available units")
