package review

import (
	"context"

	"makeupstudio/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListApproved(ctx context.Context, limit, offset int) ([]domain.Review, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SetAdminResponse(ctx context.Context, id int64, resp string) (*domain.Review, error)
}

type InviteRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.ReviewInvite, error)
	MarkUsed(ctx context.Context, id int64) error
}

// AppointmentGate resolves the appointment an invite points at, so the review
// carries the booked client's name when the submitter leaves theirs blank.
type AppointmentGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}
