package booking

import (
	"context"
	"time"

	"labbooking/internal/domain"
)

// BookingRepository defines the ledger's persistence surface.
type BookingRepository interface {
	CreateReserving(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, studentEmail string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus domain.BookingStatus) (bool, error)
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}

// EquipmentCounter supplies the registry-side numbers for the dashboard.
type EquipmentCounter interface {
	CountAvailability(ctx context.Context) (available int64, inUse int64, err error)
}

// UserCounter supplies the directory-side numbers for the dashboard.
type UserCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

// Notifier generates the advisory decision notices. Failures are logged by
// the implementation and never fail the transition.
type Notifier interface {
	NotifyBookingApproved(ctx context.Context, b *domain.Booking) error
	NotifyBookingRejected(ctx context.Context, b *domain.Booking) error
}
