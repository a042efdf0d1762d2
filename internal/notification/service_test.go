package notification

import (
	"context"
	"path/filepath"
	"testing"

	"labbooking/internal/database"
	"labbooking/internal/domain"
	"labbooking/internal/modules/booking"
	"labbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// End-to-end over a real store: the notice body must carry the equipment
// display name even though bookings only persist the equipment id.
func newDecisionFixture(t *testing.T) (*booking.Service, *Service, *domain.Equipment, context.Context) {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	notifs := NewService(repository.NewNotificationRepository(db), zap.NewNop())
	bookings := booking.NewService(
		repository.NewBookingRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewUserRepository(db),
		notifs,
	)

	e := &domain.Equipment{
		Name:       "Máy ly tâm Centrifuge CF-15",
		Department: "Khoa Sinh học",
		Room:       "Lab B101",
		Quantity:   2,
		Available:  2,
	}
	e.DeriveStatus()
	require.NoError(t, repository.NewEquipmentRepository(db).Create(context.Background(), e))

	return bookings, notifs, e, context.Background()
}

func createBooking(t *testing.T, bookings *booking.Service, ctx context.Context, equipmentID int64) *domain.Booking {
	t.Helper()

	b, _, err := bookings.Create(ctx, booking.CreateBookingRequest{
		EquipmentID:  equipmentID,
		Date:         "2026-09-01",
		PickupTime:   "14:00",
		ReturnTime:   "16:00",
		Purpose:      "Thí nghiệm tách protein",
		StudentName:  "Nguyễn Văn A",
		StudentEmail: "student@dnu.edu.vn",
	})
	require.NoError(t, err)
	return b
}

func TestApprovalNotice_NamesEquipment(t *testing.T) {
	bookings, notifs, e, ctx := newDecisionFixture(t)
	b := createBooking(t, bookings, ctx, e.ID)

	_, err := bookings.Decide(ctx, b.ID, "admin", true)
	require.NoError(t, err)

	notices, err := notifs.ListForRecipient(ctx, "student@dnu.edu.vn", 10)
	require.NoError(t, err)
	require.Len(t, notices, 1)

	assert.Equal(t, domain.NotifBookingApproved, notices[0].Type)
	assert.Contains(t, notices[0].Body, e.Name)
	assert.Contains(t, notices[0].Body, "2026-09-01")
	assert.Contains(t, notices[0].Body, "Lab B101")
}

func TestRejectionNotice_NamesEquipment(t *testing.T) {
	bookings, notifs, e, ctx := newDecisionFixture(t)
	b := createBooking(t, bookings, ctx, e.ID)

	_, err := bookings.Decide(ctx, b.ID, "admin", false)
	require.NoError(t, err)

	notices, err := notifs.ListForRecipient(ctx, "student@dnu.edu.vn", 10)
	require.NoError(t, err)
	require.Len(t, notices, 1)

	assert.Equal(t, domain.NotifBookingRejected, notices[0].Type)
	assert.Contains(t, notices[0].Body, e.Name)
}
