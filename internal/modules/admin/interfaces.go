package admin

import (
	"context"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/repository"
)

type AppointmentStore interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type ServiceStore interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type TransportStore interface {
	List(ctx context.Context) ([]domain.TransportCost, error)
	GetByID(ctx context.Context, id int64) (*domain.TransportCost, error)
	Create(ctx context.Context, t *domain.TransportCost) error
	Update(ctx context.Context, t *domain.TransportCost) error
	Delete(ctx context.Context, id int64) error
}

type BlockedSlotStore interface {
	List(ctx context.Context, from string) ([]domain.BlockedSlot, error)
	Create(ctx context.Context, b *domain.BlockedSlot) error
	Delete(ctx context.Context, id int64) error
}

type ReviewCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type ComplaintCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}
