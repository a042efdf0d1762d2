package snapshot

import (
	"context"
	"time"

	"labbooking/internal/domain"

	"go.uber.org/zap"
)

// Snapshot is the wholesale state of the system as three collections.
// The keys mirror the browser-storage layout the web client persists.
type Snapshot struct {
	Users     []UserRecord       `json:"lab-users"`
	Bookings  []domain.Booking   `json:"lab-bookings"`
	Equipment []domain.Equipment `json:"lab-equipment"`
}

// UserRecord carries the password hash, which domain.User hides from its
// JSON form. Without it a restored snapshot would lock everyone out.
type UserRecord struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	Status       string    `json:"status"`
	StudentID    string    `json:"student_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	ReplaceAll(ctx context.Context, items []domain.User) error
}

type BookingStore interface {
	List(ctx context.Context, studentEmail string) ([]domain.Booking, error)
	ReplaceAll(ctx context.Context, items []domain.Booking) error
}

type EquipmentStore interface {
	List(ctx context.Context, department string) ([]domain.Equipment, error)
	ReplaceAll(ctx context.Context, items []domain.Equipment) error
}

type Service struct {
	users     UserStore
	bookings  BookingStore
	equipment EquipmentStore
	logger    *zap.Logger
}

func NewService(users UserStore, bookings BookingStore, equipment EquipmentStore, logger *zap.Logger) *Service {
	return &Service{users: users, bookings: bookings, equipment: equipment, logger: logger}
}

func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx, "")
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipment.List(ctx, "")
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Users:     make([]UserRecord, 0, len(users)),
		Bookings:  bookings,
		Equipment: equipment,
	}
	for _, u := range users {
		snap.Users = append(snap.Users, toUserRecord(u))
	}
	return snap, nil
}

// Import replaces every collection verbatim. Partial failures leave the
// store in a mixed state; callers restore from a snapshot they trust.
func (s *Service) Import(ctx context.Context, snap *Snapshot) error {
	users := make([]domain.User, 0, len(snap.Users))
	for _, r := range snap.Users {
		users = append(users, fromUserRecord(r))
	}

	if err := s.users.ReplaceAll(ctx, users); err != nil {
		return err
	}
	if err := s.equipment.ReplaceAll(ctx, snap.Equipment); err != nil {
		return err
	}
	if err := s.bookings.ReplaceAll(ctx, snap.Bookings); err != nil {
		return err
	}

	s.logger.Info("snapshot imported",
		zap.Int("users", len(snap.Users)),
		zap.Int("bookings", len(snap.Bookings)),
		zap.Int("equipment", len(snap.Equipment)),
	)
	return nil
}

func toUserRecord(u domain.User) UserRecord {
	return UserRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Department:   u.Department,
		Status:       string(u.Status),
		StudentID:    u.StudentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserRecord(r UserRecord) domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		Department:   r.Department,
		Status:       domain.UserStatus(r.Status),
		StudentID:    r.StudentID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
