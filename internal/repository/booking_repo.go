package repository

import (
	"context"
	"time"

	"labbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	EquipmentID  int64     `gorm:"column:equipment_id"`
	Department   string    `gorm:"column:department"`
	Room         string    `gorm:"column:room"`
	Date         string    `gorm:"column:date"`
	PickupTime   string    `gorm:"column:pickup_time"`
	ReturnTime   string    `gorm:"column:return_time"`
	Status       string    `gorm:"column:status"`
	StudentName  string    `gorm:"column:student_name"`
	StudentEmail string    `gorm:"column:student_email"`
	Purpose      *string   `gorm:"column:purpose"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var purpose string
	if m.Purpose != nil {
		purpose = *m.Purpose
	}

	return &domain.Booking{
		ID:           m.ID,
		EquipmentID:  m.EquipmentID,
		Department:   m.Department,
		Room:         m.Room,
		Date:         m.Date,
		PickupTime:   m.PickupTime,
		ReturnTime:   m.ReturnTime,
		Status:       domain.BookingStatus(m.Status),
		StudentName:  m.StudentName,
		StudentEmail: m.StudentEmail,
		Purpose:      purpose,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var purpose *string
	if b.Purpose != "" {
		v := b.Purpose
		purpose = &v
	}

	return bookingModel{
		ID:           b.ID,
		EquipmentID:  b.EquipmentID,
		Department:   b.Department,
		Room:         b.Room,
		Date:         b.Date,
		PickupTime:   b.PickupTime,
		ReturnTime:   b.ReturnTime,
		Status:       string(b.Status),
		StudentName:  b.StudentName,
		StudentEmail: b.StudentEmail,
		Purpose:      purpose,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// CreateReserving reserves one unit of the referenced equipment and appends
// the booking in a single transaction, so the ledger and the registry can
// never tear apart. Returns gorm.ErrRecordNotFound when the equipment id is
// unknown and ErrNoAvailableUnits when every unit is reserved.
func (r *BookingRepository) CreateReserving(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq equipmentModel
		if err := tx.First(&eq, b.EquipmentID).Error; err != nil {
			return err
		}
		if eq.Available <= 0 {
			return ErrNoAvailableUnits
		}

		// Guard the decrement against concurrent writers; the count in the
		// row we read may be stale by the time the UPDATE runs.
		res := tx.Model(&equipmentModel{}).
			Where("id = ? AND available > 0", eq.ID).
			Updates(map[string]any{
				"available": gorm.Expr("available - 1"),
				"status": gorm.Expr(
					"CASE WHEN status = 'maintenance' THEN status WHEN available - 1 > 0 THEN 'available' ELSE 'in-use' END",
				),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoAvailableUnits
		}

		b.EquipmentName = eq.Name
		b.Department = eq.Department
		b.Room = eq.Room
		b.Status = domain.BookingPending

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		b.EquipmentName = eq.Name
		return nil
	})
}

// GetByID returns the booking with the equipment display name joined, the
// same shape List produces. The decision notices render that name, so a
// single-row read must not come back without it.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var row bookingRow
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, equipment.name AS equipment_name").
		Joins("LEFT JOIN equipment ON equipment.id = bookings.equipment_id").
		Where("bookings.id = ?", id).
		Take(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(row.Booking)
	b.EquipmentName = row.EquipmentName
	return b, nil
}

type bookingRow struct {
	// The field must be exported with an explicit embedded tag: GORM's
	// schema parser skips unexported fields, so an anonymous bookingModel
	// would scan back empty.
	Booking       bookingModel `gorm:"embedded"`
	EquipmentName string       `gorm:"column:equipment_name"`
}

// List returns bookings newest-first with the equipment display name joined
// from the registry. An empty studentEmail returns the whole ledger.
func (r *BookingRepository) List(ctx context.Context, studentEmail string) ([]domain.Booking, error) {
	var rows []bookingRow
	q := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, equipment.name AS equipment_name").
		Joins("LEFT JOIN equipment ON equipment.id = bookings.equipment_id").
		Order("bookings.id DESC")
	if studentEmail != "" {
		q = q.Where("bookings.student_email = ?", studentEmail)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		b := toDomainBooking(row.Booking)
		b.EquipmentName = row.EquipmentName
		out = append(out, *b)
	}
	return out, nil
}

// UpdateStatus transitions a booking out of the given status. The WHERE
// clause keeps the transition atomic: zero rows affected means the booking
// was not in fromStatus anymore.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus domain.BookingStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]any{"status": string(toStatus), "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CompleteElapsed marks approved bookings whose return time has passed as
// completed. Date and return time are stored as "2006-01-02" and "15:04"
// strings, so the lexicographic comparison is also the chronological one.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Format("2006-01-02 15:04")
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status = ? AND (date || ' ' || return_time) <= ?", string(domain.BookingApproved), cutoff).
		Updates(map[string]any{"status": string(domain.BookingCompleted), "updated_at": now})
	return res.RowsAffected, res.Error
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("status, COUNT(1) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.BookingStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *BookingRepository) ReplaceAll(ctx context.Context, items []domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		for i := range items {
			m := toBookingModel(&items[i])
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
