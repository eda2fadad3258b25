package review

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
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 42
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListApproved(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReviewRepository) SetAdminResponse(ctx context.Context, id int64, resp string) (*domain.Review, error) {
	args := m.Called(ctx, id, resp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) GetByToken(ctx context.Context, token string) (*domain.ReviewInvite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewInvite), args.Error(1)
}

func (m *MockInviteRepository) MarkUsed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAppointmentGate struct {
	mock.Mock
}

func (m *MockAppointmentGate) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	invites := new(MockInviteRepository)
	appts := new(MockAppointmentGate)

	invites.On("GetByToken", mock.Anything, "tok-1").Return(&domain.ReviewInvite{ID: 7, AppointmentID: 3}, nil)
	appts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Appointment{ID: 3, ClientName: "Lucía"}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	invites.On("MarkUsed", mock.Anything, int64(7)).Return(nil)

	s := NewService(reviews, invites, appts)

	rv, err := s.Create(context.Background(), CreateReviewRequest{Token: "tok-1", Rating: 5, Comment: "excelente"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), rv.AppointmentID)
	assert.Equal(t, "Lucía", rv.ClientName)
	assert.Equal(t, domain.ReviewPending, rv.Status)
	invites.AssertExpectations(t)
}

func TestCreate_UnknownToken(t *testing.T) {
	invites := new(MockInviteRepository)
	invites.On("GetByToken", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(new(MockReviewRepository), invites, new(MockAppointmentGate))

	_, err := s.Create(context.Background(), CreateReviewRequest{Token: "nope", Rating: 4})
	assert.ErrorIs(t, err, ErrInviteInvalid)
}

func TestCreate_UsedToken(t *testing.T) {
	invites := new(MockInviteRepository)
	used := time.Now()
	invites.On("GetByToken", mock.Anything, "tok-1").Return(&domain.ReviewInvite{ID: 7, AppointmentID: 3, UsedAt: &used}, nil)

	s := NewService(new(MockReviewRepository), invites, new(MockAppointmentGate))

	_, err := s.Create(context.Background(), CreateReviewRequest{Token: "tok-1", Rating: 4})
	assert.ErrorIs(t, err, ErrInviteUsed)
}

func TestCreate_ReplayedTokenLosesRace(t *testing.T) {
	reviews := new(MockReviewRepository)
	invites := new(MockInviteRepository)

	// the snapshot still looks unused, but another request burned the invite
	// between the read and the conditional update
	invites.On("GetByToken", mock.Anything, "tok-1").Return(&domain.ReviewInvite{ID: 7, AppointmentID: 3}, nil)
	invites.On("MarkUsed", mock.Anything, int64(7)).Return(gorm.ErrRecordNotFound)

	s := NewService(reviews, invites, new(MockAppointmentGate))

	_, err := s.Create(context.Background(), CreateReviewRequest{Token: "tok-1", Rating: 4})

	assert.ErrorIs(t, err, ErrInviteUsed)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_SecondReviewForAppointmentConflicts(t *testing.T) {
	reviews := new(MockReviewRepository)
	invites := new(MockInviteRepository)
	appts := new(MockAppointmentGate)

	invites.On("GetByToken", mock.Anything, "tok-1").Return(&domain.ReviewInvite{ID: 7, AppointmentID: 3}, nil)
	invites.On("MarkUsed", mock.Anything, int64(7)).Return(nil)
	appts.On("GetByID", mock.Anything, int64(3)).Return(&domain.Appointment{ID: 3, ClientName: "Lucía"}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: reviews.appointment_id"))

	s := NewService(reviews, invites, appts)

	_, err := s.Create(context.Background(), CreateReviewRequest{Token: "tok-1", Rating: 4})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreate_RatingBounds(t *testing.T) {
	s := NewService(new(MockReviewRepository), new(MockInviteRepository), new(MockAppointmentGate))

	for _, rating := range []int{0, -1, 6} {
		_, err := s.Create(context.Background(), CreateReviewRequest{Token: "tok-1", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRequest, "rating %d", rating)
	}
}

func TestSetStatus(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByID", mock.Anything, int64(1)).Return(&domain.Review{ID: 1}, nil)
	reviews.On("UpdateStatus", mock.Anything, int64(1), "approved").Return(nil)

	s := NewService(reviews, new(MockInviteRepository), new(MockAppointmentGate))

	require.NoError(t, s.SetStatus(context.Background(), 1, domain.ReviewApproved))
	assert.ErrorIs(t, s.SetStatus(context.Background(), 1, domain.ReviewPending), ErrInvalidRequest)
}

func TestSetStatus_NotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	s := NewService(reviews, new(MockInviteRepository), new(MockAppointmentGate))

	assert.ErrorIs(t, s.SetStatus(context.Background(), 9, domain.ReviewHidden), ErrNotFound)
}

func TestRespond_EmptyResponse(t *testing.T) {
	s := NewService(new(MockReviewRepository), new(MockInviteRepository), new(MockAppointmentGate))

	_, err := s.Respond(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
