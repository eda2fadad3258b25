package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/modules/pricing"
	"makeupstudio/internal/repository"
)

// Mock repositories
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) HasOverlap(ctx context.Context, date string, startMinute, endMinute int) (bool, error) {
	args := m.Called(ctx, date, startMinute, endMinute)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) GetBusySlots(ctx context.Context, date string) ([]repository.BusySlot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BusySlot), args.Error(1)
}

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) ListActive(ctx context.Context, category string) ([]domain.Service, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockTransportProvider struct {
	mock.Mock
}

func (m *MockTransportProvider) ListActive(ctx context.Context) ([]domain.TransportCost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransportCost), args.Error(1)
}

type MockBlockedDateChecker struct {
	mock.Mock
}

func (m *MockBlockedDateChecker) IsBlocked(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

var catalog = []domain.Service{
	{ID: 1, Name: "Maquillaje Social - Estilo Natural", Price: 200, Duration: 90, Category: domain.CategorySocial, IsActive: true},
	{ID: 2, Name: "Maquillaje de Novia", Price: 550, Duration: 150, Category: domain.CategoryBridal, IsActive: true},
	{ID: 4, Name: "Peinado Ondas", Price: 120, Duration: 60, Category: domain.CategoryHairstyle, IsActive: true},
}

var districts = []domain.TransportCost{
	{ID: 1, District: "Miraflores", Cost: 30, IsActive: true},
}

func newTestService(appts *MockAppointmentRepository, cat *MockCatalogProvider, tr *MockTransportProvider, bl *MockBlockedDateChecker) *Service {
	s := NewService(appts, cat, tr, bl, pricing.DefaultConfig())
	s.now = func() time.Time {
		return time.Date(2026, 6, 1, 10, 0, 0, 0, time.Local)
	}
	return s
}

func TestService_Quote_Success(t *testing.T) {
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)

	s := newTestService(new(MockAppointmentRepository), cat, tr, new(MockBlockedDateChecker))

	res, err := s.Quote(context.Background(), QuoteRequest{
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
		LocationType: "home",
		District:     "Miraflores",
		TimeOfDay:    "20:00",
	})

	require.NoError(t, err)
	require.Nil(t, res.Rejection)
	require.NotNil(t, res.Breakdown)
	assert.Equal(t, 280.0, res.Breakdown.Total) // 200 + 30 transport + 50 night
	assert.Equal(t, 90, res.Breakdown.TotalDuration)
}

func TestService_Quote_SelectionRejected(t *testing.T) {
	cat := new(MockCatalogProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)

	s := newTestService(new(MockAppointmentRepository), cat, new(MockTransportProvider), new(MockBlockedDateChecker))

	res, err := s.Quote(context.Background(), QuoteRequest{
		Services:     []ServicePick{{ServiceID: 4, Quantity: 1}},
		LocationType: "studio",
		TimeOfDay:    "14:00",
	})

	require.NoError(t, err)
	require.NotNil(t, res.Rejection)
	assert.Equal(t, pricing.MsgOnlyHairstyle, res.Rejection.Message)
	assert.Nil(t, res.Breakdown)
}

func TestService_Quote_InvalidLocationType(t *testing.T) {
	s := newTestService(new(MockAppointmentRepository), new(MockCatalogProvider), new(MockTransportProvider), new(MockBlockedDateChecker))

	_, err := s.Quote(context.Background(), QuoteRequest{
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
		LocationType: "beach",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Quote_UppercaseLocationAccepted(t *testing.T) {
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)

	s := newTestService(new(MockAppointmentRepository), cat, tr, new(MockBlockedDateChecker))

	res, err := s.Quote(context.Background(), QuoteRequest{
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
		LocationType: "HOME",
		District:     "Miraflores",
		TimeOfDay:    "20:00",
	})

	require.NoError(t, err)
	require.NotNil(t, res.Breakdown)
	assert.Equal(t, 280.0, res.Breakdown.Total)
}

func TestService_GetByCode_NotFound(t *testing.T) {
	appts := new(MockAppointmentRepository)
	appts.On("GetByCode", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	s := newTestService(appts, new(MockCatalogProvider), new(MockTransportProvider), new(MockBlockedDateChecker))

	_, err := s.GetByCode(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByCode_RepoErrorPropagates(t *testing.T) {
	appts := new(MockAppointmentRepository)
	dbErr := errors.New("connection reset")
	appts.On("GetByCode", mock.Anything, "abc").Return(nil, dbErr)

	s := newTestService(appts, new(MockCatalogProvider), new(MockTransportProvider), new(MockBlockedDateChecker))

	_, err := s.GetByCode(context.Background(), "abc")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestService_CreateAppointment_Success(t *testing.T) {
	appts := new(MockAppointmentRepository)
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	bl := new(MockBlockedDateChecker)

	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)
	bl.On("IsBlocked", mock.Anything, "2026-06-02").Return(false, nil)
	appts.On("HasOverlap", mock.Anything, "2026-06-02", 20*60, 20*60+90).Return(false, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(appts, cat, tr, bl)

	a, rej, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "20:00",
		LocationType: "home",
		District:     "Miraflores",
		Address:      "Av. Larco 123",
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	require.Nil(t, rej)
	require.NotNil(t, a)
	assert.Equal(t, int64(999), a.ID)
	assert.NotEmpty(t, a.Code)
	assert.Equal(t, domain.AppointmentPending, a.Status)
	assert.Equal(t, 280.0, a.TotalPrice)
	assert.Equal(t, 50.0, a.NightShiftCost)
	assert.Equal(t, 30.0, a.TransportCost)
	require.Len(t, a.Items, 1)
	assert.Equal(t, "Maquillaje Social - Estilo Natural", a.Items[0].ServiceName)

	appts.AssertExpectations(t)
}

func TestService_CreateAppointment_SelectionRejected(t *testing.T) {
	cat := new(MockCatalogProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)

	s := newTestService(new(MockAppointmentRepository), cat, new(MockTransportProvider), new(MockBlockedDateChecker))

	_, rej, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "14:00",
		LocationType: "studio",
		Services: []ServicePick{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 2, Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, ErrSelectionRejected)
	require.NotNil(t, rej)
	assert.Equal(t, pricing.MsgBridalMix, rej.Message)
}

func TestService_CreateAppointment_UnknownService(t *testing.T) {
	cat := new(MockCatalogProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)

	s := newTestService(new(MockAppointmentRepository), cat, new(MockTransportProvider), new(MockBlockedDateChecker))

	_, _, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "14:00",
		LocationType: "studio",
		Services:     []ServicePick{{ServiceID: 777, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestService_CreateAppointment_BlockedDate(t *testing.T) {
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	bl := new(MockBlockedDateChecker)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)
	bl.On("IsBlocked", mock.Anything, "2026-06-02").Return(true, nil)

	s := newTestService(new(MockAppointmentRepository), cat, tr, bl)

	_, _, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "14:00",
		LocationType: "studio",
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateAppointment_SlotConflict(t *testing.T) {
	appts := new(MockAppointmentRepository)
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	bl := new(MockBlockedDateChecker)

	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)
	bl.On("IsBlocked", mock.Anything, "2026-06-02").Return(false, nil)
	appts.On("HasOverlap", mock.Anything, "2026-06-02", 14*60, 14*60+90).Return(true, nil)

	s := newTestService(appts, cat, tr, bl)

	_, _, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "14:00",
		LocationType: "studio",
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateAppointment_PastSlot(t *testing.T) {
	cat := new(MockCatalogProvider)
	tr := new(MockTransportProvider)
	cat.On("ListActive", mock.Anything, "").Return(catalog, nil)
	tr.On("ListActive", mock.Anything).Return(districts, nil)

	s := newTestService(new(MockAppointmentRepository), cat, tr, new(MockBlockedDateChecker))

	_, _, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-05-31", // before the fixed test clock
		TimeOfDay:    "14:00",
		LocationType: "studio",
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateAppointment_HomeRequiresDistrict(t *testing.T) {
	s := newTestService(new(MockAppointmentRepository), new(MockCatalogProvider), new(MockTransportProvider), new(MockBlockedDateChecker))

	_, _, err := s.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientName:   "Lucía",
		ClientPhone:  "+51 999 888 777",
		Date:         "2026-06-02",
		TimeOfDay:    "14:00",
		LocationType: "home",
		Services:     []ServicePick{{ServiceID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_GetAvailability(t *testing.T) {
	appts := new(MockAppointmentRepository)
	bl := new(MockBlockedDateChecker)
	bl.On("IsBlocked", mock.Anything, "2026-06-02").Return(false, nil)
	appts.On("GetBusySlots", mock.Anything, "2026-06-02").Return([]repository.BusySlot{
		{StartMinute: 10 * 60, EndMinute: 11*60 + 30},
		{StartMinute: 19*60 + 30, EndMinute: 21 * 60},
	}, nil)

	s := newTestService(appts, new(MockCatalogProvider), new(MockTransportProvider), bl)

	res, err := s.GetAvailability(context.Background(), "2026-06-02")

	require.NoError(t, err)
	assert.False(t, res.Blocked)
	require.Len(t, res.BusySlots, 2)
	assert.Equal(t, BusySlotDTO{Start: "10:00", End: "11:30"}, res.BusySlots[0])
	assert.Equal(t, BusySlotDTO{Start: "19:30", End: "21:00"}, res.BusySlots[1])
}

func TestService_GetAvailability_BadDate(t *testing.T) {
	s := newTestService(new(MockAppointmentRepository), new(MockCatalogProvider), new(MockTransportProvider), new(MockBlockedDateChecker))

	_, err := s.GetAvailability(context.Background(), "02-06-2026")
	assert.ErrorIs(t, err, ErrValidation)
}
