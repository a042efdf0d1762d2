package domain

import "time"

type NotificationType string

const (
	NotifBookingApproved NotificationType = "booking_approved"
	NotifBookingRejected NotificationType = "booking_rejected"
)

// Notification is an advisory outbound message record. Nothing delivers it;
// the body is synthesized at decision time and kept for display.
type Notification struct {
	ID             int64            `json:"id"`
	RecipientEmail string           `json:"recipient_email"`
	Type           NotificationType `json:"type"`
	Subject        string           `json:"subject"`
	Body           string           `json:"body"`
	CreatedAt      time.Time        `json:"created_at"`
}
