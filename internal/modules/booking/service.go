package booking

import (
	"context"
	"errors"
	"time"

	"labbooking/internal/domain"
	"labbooking/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings  BookingRepository
	equipment EquipmentCounter
	users     UserCounter
	notifs    Notifier
}

func NewService(
	bookings BookingRepository,
	equipment EquipmentCounter,
	users UserCounter,
	notifs Notifier,
) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		users:     users,
		notifs:    notifs,
	}
}

// Create runs the reservation protocol: one unit of the referenced equipment
// is reserved and the pending booking appended in a single transaction. The
// advisory risk assessment is computed up front and returned with the
// booking; it never blocks submission.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, RiskAssessment, error) {
	if req.EquipmentID <= 0 || req.StudentEmail == "" {
		return nil, RiskAssessment{}, ErrValidation
	}
	// The completion sweep compares "date return_time" lexicographically, so
	// both fields must keep these exact shapes.
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, RiskAssessment{}, ErrValidation
	}
	if _, err := time.Parse("15:04", req.PickupTime); err != nil {
		return nil, RiskAssessment{}, ErrValidation
	}
	if _, err := time.Parse("15:04", req.ReturnTime); err != nil {
		return nil, RiskAssessment{}, ErrValidation
	}

	risk := AssessRisk(req.PickupTime, req.ReturnTime, req.Language)

	b := &domain.Booking{
		EquipmentID:  req.EquipmentID,
		Date:         req.Date,
		PickupTime:   req.PickupTime,
		ReturnTime:   req.ReturnTime,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		Purpose:      req.Purpose,
	}

	if err := s.bookings.CreateReserving(ctx, b); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, risk, ErrEquipmentNotFound
		case errors.Is(err, repository.ErrNoAvailableUnits):
			return nil, risk, ErrEquipmentUnavailable
		default:
			return nil, risk, err
		}
	}

	return b, risk, nil
}

func (s *Service) ListForUser(ctx context.Context, studentEmail string) ([]domain.Booking, error) {
	return s.bookings.List(ctx, studentEmail)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx, "")
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Decide is the approval workflow. Only pending bookings transition, only to
// approved or rejected, and both outcomes are terminal. The transition
// touches the booking's status alone; reserved inventory stays consumed
// whatever the outcome.
func (s *Service) Decide(ctx context.Context, bookingID int64, actorRole string, approve bool) (*domain.Booking, error) {
	if actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	target := domain.BookingRejected
	if approve {
		target = domain.BookingApproved
	}

	ok, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingPending, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race against another decision.
		return nil, ErrInvalidStatusTransition
	}

	b.Status = target
	if s.notifs != nil {
		if approve {
			_ = s.notifs.NotifyBookingApproved(ctx, b)
		} else {
			_ = s.notifs.NotifyBookingRejected(ctx, b)
		}
	}

	return b, nil
}

// CompleteElapsed moves approved bookings whose return time has passed to
// completed. Meant to be called periodically; returns how many transitioned.
func (s *Service) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	return s.bookings.CompleteElapsed(ctx, now)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		PendingBookings:   counts[domain.BookingPending],
		ApprovedBookings:  counts[domain.BookingApproved],
		RejectedBookings:  counts[domain.BookingRejected],
		CompletedBookings: counts[domain.BookingCompleted],
	}
	for _, n := range counts {
		st.TotalBookings += n
	}

	st.AvailableEquipment, st.BusyEquipment, err = s.equipment.CountAvailability(ctx)
	if err != nil {
		return nil, err
	}

	st.ActiveUsers, err = s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return st, nil
}
