package equipment

import (
	"context"
	"testing"

	"labbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil && e != nil {
		e.ID = 101
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) List(ctx context.Context, department string) ([]domain.Equipment, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func storedEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:         1,
		Name:       "Máy ly tâm Centrifuge CF-15",
		Department: "Khoa Sinh học",
		Room:       "Lab B101",
		Quantity:   2,
		Available:  2,
		Status:     domain.EquipmentAvailable,
	}
}

func TestService_Add_DerivesStatusAndAvailability(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	e, err := svc.Add(context.Background(), AddEquipmentRequest{
		Name:       "Máy in 3D Ultimaker",
		Department: "Khoa Công nghệ thông tin",
		Room:       "Lab IT403",
		Quantity:   3,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, e.Available)
	assert.Equal(t, domain.EquipmentAvailable, e.Status)
}

func TestService_Add_RejectsMissingFields(t *testing.T) {
	svc := NewService(new(MockEquipmentRepository))

	_, err := svc.Add(context.Background(), AddEquipmentRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(context.Background(), AddEquipmentRequest{Name: "X", Department: "Y", Quantity: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_RejectsAvailableAboveQuantity(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(storedEquipment(), nil)

	_, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Available: intPtr(5)})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_RejectsNegativeAvailable(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(storedEquipment(), nil)

	_, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Available: intPtr(-1)})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_Update_RejectsShrinkingQuantityBelowAvailable(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(storedEquipment(), nil)

	_, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Quantity: intPtr(1)})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_Update_DerivesInUseWhenDepleted(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(storedEquipment(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	e, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Available: intPtr(0)})

	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentInUse, e.Status)
}

func TestService_Update_MaintenanceIsSticky(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(storedEquipment(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	e, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Maintenance: boolPtr(true)})

	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, e.Status)
}

func TestService_Update_ClearingMaintenanceRederives(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	stored := storedEquipment()
	stored.Status = domain.EquipmentMaintenance
	repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	e, err := svc.Update(context.Background(), 1, UpdateEquipmentRequest{Maintenance: boolPtr(false)})

	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, e.Status)
}

func TestService_Update_UnknownID(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 77, UpdateEquipmentRequest{Name: strPtr("Renamed")})

	assert.ErrorIs(t, err, ErrNotFound)
}
