package equipment

type AddEquipmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Room        string `json:"room"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateEquipmentRequest is a shallow partial update; nil fields are left
// untouched.
type UpdateEquipmentRequest struct {
	Name        *string `json:"name"`
	Department  *string `json:"department"`
	Room        *string `json:"room"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Available   *int    `json:"available"`
	Maintenance *bool   `json:"maintenance"`
}
