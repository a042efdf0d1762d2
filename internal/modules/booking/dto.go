package booking

type CreateBookingRequest struct {
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	PickupTime  string `json:"pickup_time" binding:"required"`
	ReturnTime  string `json:"return_time" binding:"required"`
	Purpose     string `json:"purpose"`
	Language    string `json:"language"`

	// Filled from the authenticated user, not the request body.
	StudentName  string `json:"-"`
	StudentEmail string `json:"-"`
}

type DecideBookingRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// Stats mirrors the dashboard counters.
type Stats struct {
	TotalBookings      int64 `json:"total_bookings"`
	PendingBookings    int64 `json:"pending_bookings"`
	ApprovedBookings   int64 `json:"approved_bookings"`
	RejectedBookings   int64 `json:"rejected_bookings"`
	CompletedBookings  int64 `json:"completed_bookings"`
	AvailableEquipment int64 `json:"available_equipment"`
	BusyEquipment      int64 `json:"busy_equipment"`
	ActiveUsers        int64 `json:"active_users"`
}
