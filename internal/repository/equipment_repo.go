package repository

import (
	"context"
	"time"

	"labbooking/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Department  string    `gorm:"column:department"`
	Room        string    `gorm:"column:room"`
	Description *string   `gorm:"column:description"`
	Quantity    int       `gorm:"column:quantity"`
	Available   int       `gorm:"column:available"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Equipment{
		ID:          m.ID,
		Name:        m.Name,
		Department:  m.Department,
		Room:        m.Room,
		Description: description,
		Quantity:    m.Quantity,
		Available:   m.Available,
		Status:      domain.EquipmentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	var description *string
	if e.Description != "" {
		v := e.Description
		description = &v
	}

	return equipmentModel{
		ID:          e.ID,
		Name:        e.Name,
		Department:  e.Department,
		Room:        e.Room,
		Description: description,
		Quantity:    e.Quantity,
		Available:   e.Available,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

// List returns all equipment, optionally filtered by department.
func (r *EquipmentRepository) List(ctx context.Context, department string) ([]domain.Equipment, error) {
	var models []equipmentModel
	q := r.db.WithContext(ctx).Order("id")
	if department != "" {
		q = q.Where("department = ?", department)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Equipment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	return r.db.WithContext(ctx).Save(&m).Error
}

// ReplaceAll swaps the whole registry for the given records. Used by the
// snapshot import, which restores collections wholesale.
func (r *EquipmentRepository) ReplaceAll(ctx context.Context, items []domain.Equipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&equipmentModel{}).Error; err != nil {
			return err
		}
		for i := range items {
			m := toEquipmentModel(&items[i])
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountAvailability returns how many instrument types still have free units
// and how many are fully reserved.
func (r *EquipmentRepository) CountAvailability(ctx context.Context) (available int64, inUse int64, err error) {
	if err = r.db.WithContext(ctx).Model(&equipmentModel{}).Where("available > 0").Count(&available).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&equipmentModel{}).Where("available <= 0").Count(&inUse).Error; err != nil {
		return 0, 0, err
	}
	return available, inUse, nil
}
