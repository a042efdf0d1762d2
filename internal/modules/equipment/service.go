package equipment

import (
	"context"
	"errors"

	"labbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	equipment Repository
}

func NewService(equipment Repository) *Service {
	return &Service{equipment: equipment}
}

func (s *Service) List(ctx context.Context, department string) ([]domain.Equipment, error) {
	return s.equipment.List(ctx, department)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Add(ctx context.Context, req AddEquipmentRequest) (*domain.Equipment, error) {
	if req.Name == "" || req.Department == "" || req.Quantity <= 0 {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		Name:        req.Name,
		Department:  req.Department,
		Room:        req.Room,
		Description: req.Description,
		Quantity:    req.Quantity,
		Available:   req.Quantity,
	}
	e.DeriveStatus()

	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies a shallow merge onto the matching record. The availability
// invariant is enforced here: an update may never leave available outside
// [0, quantity].
func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Room != nil {
		e.Room = *req.Room
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Quantity != nil {
		e.Quantity = *req.Quantity
	}
	if req.Available != nil {
		e.Available = *req.Available
	}

	if e.Quantity <= 0 || e.Available < 0 || e.Available > e.Quantity {
		return nil, ErrInvalidQuantity
	}

	if req.Maintenance != nil {
		if *req.Maintenance {
			e.Status = domain.EquipmentMaintenance
		} else {
			e.Status = ""
		}
	}
	e.DeriveStatus()

	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
