package complaint

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/pkg/validator"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByCode(ctx context.Context, code string) (*domain.Complaint, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Complaint, error)
	Respond(ctx context.Context, id int64, resp string) (*domain.Complaint, error)
}

type Service struct {
	complaints ComplaintRepository
}

func NewService(complaints ComplaintRepository) *Service {
	return &Service{complaints: complaints}
}

// File registers a complaint and assigns it a register code the consumer can
// keep as proof of filing.
func (s *Service) File(ctx context.Context, req FileComplaintRequest) (*domain.Complaint, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	c := &domain.Complaint{
		Code:          newRegisterCode(),
		Kind:          domain.ComplaintKind(req.Kind),
		ConsumerName:  strings.TrimSpace(req.ConsumerName),
		DocumentID:    strings.TrimSpace(req.DocumentID),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Description:   strings.TrimSpace(req.Description),
		ClaimedAmount: req.ClaimedAmount,
		Status:        domain.ComplaintOpen,
	}

	if err := s.complaints.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Complaint, error) {
	c, err := s.complaints.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]domain.Complaint, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.complaints.List(ctx, status, limit, offset)
}

func (s *Service) Respond(ctx context.Context, id int64, resp string) (*domain.Complaint, error) {
	if strings.TrimSpace(resp) == "" {
		return nil, ErrInvalidRequest
	}

	c, err := s.complaints.Respond(ctx, id, resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func newRegisterCode() string {
	return "LR-" + strings.ToUpper(uuid.NewString()[:8])
}
