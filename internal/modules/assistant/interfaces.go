package assistant

import (
	"context"

	"labbooking/internal/domain"
	"labbooking/internal/modules/booking"
)

// EquipmentDirectory reads the registry for the inventory rules.
type EquipmentDirectory interface {
	List(ctx context.Context, department string) ([]domain.Equipment, error)
}

// StatsSource supplies the dashboard counters for the statistics rule.
type StatsSource interface {
	Stats(ctx context.Context) (*booking.Stats, error)
}

// Provider is the external generative-language backend used when no rule
// matches. Implementations must honor the context deadline.
type Provider interface {
	Generate(ctx context.Context, message, language, systemContext string) (string, error)
}
