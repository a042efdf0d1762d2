package repository

import (
	"context"
	"time"

	"labbooking/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	RecipientEmail string    `gorm:"column:recipient_email;index"`
	Type           string    `gorm:"column:type"`
	Subject        string    `gorm:"column:subject"`
	Body           string    `gorm:"column:body"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := notificationModel{
		RecipientEmail: n.RecipientEmail,
		Type:           string(n.Type),
		Subject:        n.Subject,
		Body:           n.Body,
		CreatedAt:      n.CreatedAt,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, email string, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var models []notificationModel
	if err := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("id DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Notification{
			ID:             m.ID,
			RecipientEmail: m.RecipientEmail,
			Type:           domain.NotificationType(m.Type),
			Subject:        m.Subject,
			Body:           m.Body,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out, nil
}
