package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type Service struct {
	reviews      ReviewRepository
	invites      InviteRepository
	appointments AppointmentGate
}

func NewService(reviews ReviewRepository, invites InviteRepository, appointments AppointmentGate) *Service {
	return &Service{reviews: reviews, invites: invites, appointments: appointments}
}

// Create accepts a review through a one-shot invite token. The invite is
// burned first, even though the review still awaits moderation, so a token
// replayed concurrently loses the conditional update and cannot produce a
// second submission. The unique index on the review's appointment backs this
// up against direct inserts.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	inv, err := s.invites.GetByToken(ctx, strings.TrimSpace(req.Token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteInvalid
		}
		return nil, err
	}
	if inv.UsedAt != nil {
		return nil, ErrInviteUsed
	}

	if err := s.invites.MarkUsed(ctx, inv.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteUsed
		}
		return nil, err
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		a, err := s.appointments.GetByID(ctx, inv.AppointmentID)
		if err == nil && a != nil {
			name = a.ClientName
		}
	}

	rv := &domain.Review{
		AppointmentID: inv.AppointmentID,
		ClientName:    name,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Status:        domain.ReviewPending,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return rv, nil
}

func (s *Service) ListApproved(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.ListApproved(ctx, limit, offset)
}

func (s *Service) ListForAdmin(ctx context.Context, status string, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.List(ctx, status, limit, offset)
}

func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) error {
	if status != domain.ReviewApproved && status != domain.ReviewHidden {
		return ErrInvalidRequest
	}
	if _, err := s.reviews.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.reviews.UpdateStatus(ctx, id, string(status))
}

func (s *Service) Respond(ctx context.Context, id int64, resp string) (*domain.Review, error) {
	if strings.TrimSpace(resp) == "" {
		return nil, ErrInvalidRequest
	}

	rv, err := s.reviews.SetAdminResponse(ctx, id, resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
