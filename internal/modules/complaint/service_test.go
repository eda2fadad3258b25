package complaint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockComplaintRepository) GetByCode(ctx context.Context, code string) (*domain.Complaint, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Complaint, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Respond(ctx context.Context, id int64, resp string) (*domain.Complaint, error) {
	args := m.Called(ctx, id, resp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func TestFile_AssignsRegisterCode(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(repo)

	c, err := s.File(context.Background(), FileComplaintRequest{
		Kind:         "reclamo",
		ConsumerName: "María Torres",
		DocumentID:   "45678912",
		Email:        "maria@example.com",
		Description:  "El servicio no correspondió a lo contratado.",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.Code, "LR-"))
	assert.Len(t, c.Code, 11)
	assert.Equal(t, domain.ComplaintOpen, c.Status)
	assert.Equal(t, domain.ComplaintReclamo, c.Kind)
}

func TestFile_MissingRequiredFields(t *testing.T) {
	s := NewService(new(MockComplaintRepository))

	_, err := s.File(context.Background(), FileComplaintRequest{
		Kind:        "reclamo",
		Description: "sin datos del consumidor",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestFile_InvalidKind(t *testing.T) {
	s := NewService(new(MockComplaintRepository))

	_, err := s.File(context.Background(), FileComplaintRequest{
		Kind:         "sugerencia",
		ConsumerName: "María Torres",
		DocumentID:   "45678912",
		Description:  "x",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRespond(t *testing.T) {
	repo := new(MockComplaintRepository)
	answered := &domain.Complaint{ID: 11, Status: domain.ComplaintAnswered}
	repo.On("Respond", mock.Anything, int64(11), "atendido").Return(answered, nil)

	s := NewService(repo)

	c, err := s.Respond(context.Background(), 11, "atendido")
	require.NoError(t, err)
	assert.Equal(t, domain.ComplaintAnswered, c.Status)

	_, err = s.Respond(context.Background(), 11, " ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetByCode_NotFound(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("GetByCode", mock.Anything, "LR-MISSING1").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(repo)

	_, err := s.GetByCode(context.Background(), "LR-MISSING1")
	assert.ErrorIs(t, err, ErrNotFound)
}
