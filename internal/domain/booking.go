package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a requested reservation of one unit of equipment for a
// date and pickup/return window. Bookings reference equipment by id;
// EquipmentName is joined from the registry at read time, never stored.
type Booking struct {
	ID            int64         `json:"id"`
	EquipmentID   int64         `json:"equipment_id" validate:"required"`
	EquipmentName string        `json:"equipment,omitempty"`
	Department    string        `json:"department"`
	Room          string        `json:"room"`
	Date          string        `json:"date" validate:"required"`
	PickupTime    string        `json:"pickup_time" validate:"required"`
	ReturnTime    string        `json:"return_time" validate:"required"`
	Status        BookingStatus `json:"status"`
	StudentName   string        `json:"student_name"`
	StudentEmail  string        `json:"student_email" validate:"required,email"`
	Purpose       string        `json:"purpose,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
