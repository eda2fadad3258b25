package booking

import (
	"context"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/repository"
)

// AppointmentRepository defines the persistence operations the booking flow needs
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCode(ctx context.Context, code string) (*domain.Appointment, error)
	HasOverlap(ctx context.Context, date string, startMinute, endMinute int) (bool, error)
	GetBusySlots(ctx context.Context, date string) ([]repository.BusySlot, error)
}

// CatalogProvider supplies the active-service snapshot quotes are priced against
type CatalogProvider interface {
	ListActive(ctx context.Context, category string) ([]domain.Service, error)
}

// TransportProvider supplies the active district->cost table
type TransportProvider interface {
	ListActive(ctx context.Context) ([]domain.TransportCost, error)
}

// BlockedDateChecker reports whether a date is closed for booking
type BlockedDateChecker interface {
	IsBlocked(ctx context.Context, date string) (bool, error)
}
