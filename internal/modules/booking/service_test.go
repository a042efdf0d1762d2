package booking

import (
	"context"
	"testing"
	"time"

	"labbooking/internal/domain"
	"labbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateReserving(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
		b.Status = domain.BookingPending
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, studentEmail string) ([]domain.Booking, error) {
	args := m.Called(ctx, studentEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, fromStatus, toStatus)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BookingStatus]int64), args.Error(1)
}

type MockEquipmentCounter struct {
	mock.Mock
}

func (m *MockEquipmentCounter) CountAvailability(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockUserCounter struct {
	mock.Mock
}

func (m *MockUserCounter) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBookingApproved(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func newTestService(bookings *MockBookingRepository, notifs *MockNotifier) *Service {
	return NewService(bookings, new(MockEquipmentCounter), new(MockUserCounter), notifs)
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		EquipmentID:  1,
		Date:         "2026-09-01",
		PickupTime:   "14:00",
		ReturnTime:   "16:00",
		Purpose:      "Protein separation run",
		StudentName:  "Nguyễn Văn A",
		StudentEmail: "student@dnu.edu.vn",
	}
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	mockBookings.On("CreateReserving", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, risk, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "low", risk.Level)
	assert.Empty(t, risk.Issues)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_MissingFields(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	req := validCreateRequest()
	req.Date = ""

	b, _, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, b)
	mockBookings.AssertNotCalled(t, "CreateReserving", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsMalformedSchedule(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	cases := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"slash date", func(r *CreateBookingRequest) { r.Date = "01/09/2026" }},
		{"date without day", func(r *CreateBookingRequest) { r.Date = "2026-09" }},
		{"pickup am/pm", func(r *CreateBookingRequest) { r.PickupTime = "2pm" }},
		{"return out of range", func(r *CreateBookingRequest) { r.ReturnTime = "26:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			b, _, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, b)
		})
	}
	mockBookings.AssertNotCalled(t, "CreateReserving", mock.Anything, mock.Anything)
}

func TestService_Create_EquipmentNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	mockBookings.On("CreateReserving", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	b, _, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.Nil(t, b)
}

func TestService_Create_NoAvailableUnits(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	mockBookings.On("CreateReserving", mock.Anything, mock.Anything).Return(repository.ErrNoAvailableUnits)

	b, _, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrEquipmentUnavailable)
	assert.Nil(t, b)
}

func TestService_Create_RiskReturnedWithBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	mockBookings.On("CreateReserving", mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.PickupTime = "07:00"
	req.ReturnTime = "07:00"

	b, risk, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "medium", risk.Level)
	assert.Len(t, risk.Issues, 2)
}

func TestService_Decide_NonAdminForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	b, err := svc.Decide(context.Background(), 1, "student", true)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, b)
	mockBookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Decide_Approve(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotifier)
	svc := newTestService(mockBookings, mockNotifs)

	pending := &domain.Booking{ID: 7, Status: domain.BookingPending, StudentEmail: "student@dnu.edu.vn"}
	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(pending, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingPending, domain.BookingApproved).Return(true, nil)
	mockNotifs.On("NotifyBookingApproved", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Decide(context.Background(), 7, "admin", true)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
	mockBookings.AssertExpectations(t)
	mockNotifs.AssertExpectations(t)
}

func TestService_Decide_Reject(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotifier)
	svc := newTestService(mockBookings, mockNotifs)

	pending := &domain.Booking{ID: 8, Status: domain.BookingPending, StudentEmail: "student2@dnu.edu.vn"}
	mockBookings.On("GetByID", mock.Anything, int64(8)).Return(pending, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(8), domain.BookingPending, domain.BookingRejected).Return(true, nil)
	mockNotifs.On("NotifyBookingRejected", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Decide(context.Background(), 8, "admin", false)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, b.Status)
	mockNotifs.AssertExpectations(t)
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	approved := &domain.Booking{ID: 9, Status: domain.BookingApproved}
	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(approved, nil)

	b, err := svc.Decide(context.Background(), 9, "admin", false)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Nil(t, b)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Decide_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	svc := newTestService(mockBookings, new(MockNotifier))

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	b, err := svc.Decide(context.Background(), 42, "admin", true)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, b)
}

func TestService_Decide_NotifierFailureDoesNotFailDecision(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotifier)
	svc := newTestService(mockBookings, mockNotifs)

	pending := &domain.Booking{ID: 10, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(pending, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(10), domain.BookingPending, domain.BookingApproved).Return(true, nil)
	mockNotifs.On("NotifyBookingApproved", mock.Anything, mock.Anything).Return(assert.AnError)

	b, err := svc.Decide(context.Background(), 10, "admin", true)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
}

func TestService_Stats(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentCounter)
	mockUsers := new(MockUserCounter)
	svc := NewService(mockBookings, mockEquipment, mockUsers, new(MockNotifier))

	mockBookings.On("CountByStatus", mock.Anything).Return(map[domain.BookingStatus]int64{
		domain.BookingPending:   3,
		domain.BookingApproved:  5,
		domain.BookingRejected:  1,
		domain.BookingCompleted: 2,
	}, nil)
	mockEquipment.On("CountAvailability", mock.Anything).Return(int64(10), int64(2), nil)
	mockUsers.On("CountActive", mock.Anything).Return(int64(5), nil)

	st, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(11), st.TotalBookings)
	assert.Equal(t, int64(3), st.PendingBookings)
	assert.Equal(t, int64(5), st.ApprovedBookings)
	assert.Equal(t, int64(10), st.AvailableEquipment)
	assert.Equal(t, int64(2), st.BusyEquipment)
	assert.Equal(t, int64(5), st.ActiveUsers)
}
