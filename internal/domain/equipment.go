package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in-use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

// Equipment is one bookable instrument type. Available counts free units
// out of Quantity; Status is derived from Available unless the registry
// marks the instrument as under maintenance.
type Equipment struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Department  string          `json:"department" validate:"required"`
	Room        string          `json:"room"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Available   int             `json:"available" validate:"gte=0"`
	Status      EquipmentStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeriveStatus recomputes the availability status. Maintenance is sticky:
// it is only ever set explicitly and never overwritten here.
func (e *Equipment) DeriveStatus() {
	if e.Status == EquipmentMaintenance {
		return
	}
	if e.Available > 0 {
		e.Status = EquipmentAvailable
	} else {
		e.Status = EquipmentInUse
	}
}
