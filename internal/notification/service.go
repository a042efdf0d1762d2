package notification

import (
	"context"
	"fmt"

	"labbooking/internal/domain"
	"labbooking/internal/repository"

	"go.uber.org/zap"
)

// Service synthesizes decision notices for booking requesters. Messages are
// stored and logged only; there is no delivery channel and no retry.
type Service struct {
	repo   *repository.NotificationRepository
	logger *zap.Logger
}

func NewService(repo *repository.NotificationRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) NotifyBookingApproved(ctx context.Context, b *domain.Booking) error {
	n := &domain.Notification{
		RecipientEmail: b.StudentEmail,
		Type:           domain.NotifBookingApproved,
		Subject:        fmt.Sprintf("Booking #%d approved", b.ID),
		Body:           approvedBody(b),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.logger.Info("booking decision notice generated",
		zap.Int64("booking_id", b.ID),
		zap.String("recipient", b.StudentEmail),
		zap.String("type", string(n.Type)),
	)
	return nil
}

func (s *Service) NotifyBookingRejected(ctx context.Context, b *domain.Booking) error {
	n := &domain.Notification{
		RecipientEmail: b.StudentEmail,
		Type:           domain.NotifBookingRejected,
		Subject:        fmt.Sprintf("Booking #%d rejected", b.ID),
		Body:           rejectedBody(b),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.logger.Info("booking decision notice generated",
		zap.Int64("booking_id", b.ID),
		zap.String("recipient", b.StudentEmail),
		zap.String("type", string(n.Type)),
	)
	return nil
}

func (s *Service) ListForRecipient(ctx context.Context, email string, limit int) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, email, limit)
}

func approvedBody(b *domain.Booking) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour equipment booking for %q has been approved.\n\nTime: %s from %s to %s\nRoom: %s\n\nPlease arrive on time and follow equipment usage guidelines.\n\nBest regards,\nLab Management",
		b.StudentName, b.EquipmentName, b.Date, b.PickupTime, b.ReturnTime, b.Room,
	)
}

func rejectedBody(b *domain.Booking) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe regret to inform you that your equipment booking for %q has been rejected.\n\nReason: Additional information needed or schedule conflict.\n\nPlease contact us for assistance.\n\nBest regards,\nLab Management",
		b.StudentName, b.EquipmentName,
	)
}
