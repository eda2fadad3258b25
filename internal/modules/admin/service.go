package admin

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/repository"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type Service struct {
	appointments AppointmentStore
	services     ServiceStore
	transport    TransportStore
	blocked      BlockedSlotStore
	reviews      ReviewCounter
	complaints   ComplaintCounter
}

func NewService(
	appointments AppointmentStore,
	services ServiceStore,
	transport TransportStore,
	blocked BlockedSlotStore,
	reviews ReviewCounter,
	complaints ComplaintCounter,
) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		transport:    transport,
		blocked:      blocked,
		reviews:      reviews,
		complaints:   complaints,
	}
}

func (s *Service) ListAppointments(ctx context.Context, f repository.ListFilter) ([]domain.Appointment, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.appointments.List(ctx, f)
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// allowed forward transitions for manual status changes; cancellation goes
// through CancelAppointment so a reason is always recorded
var statusTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentPending:   {domain.AppointmentConfirmed},
	domain.AppointmentConfirmed: {domain.AppointmentCompleted},
}

func (s *Service) UpdateAppointmentStatus(ctx context.Context, id int64, newStatus string) (*domain.Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	target := domain.AppointmentStatus(newStatus)
	allowed := false
	for _, t := range statusTransitions[a.Status] {
		if t == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.appointments.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	return s.GetAppointment(ctx, id)
}

func (s *Service) CancelAppointment(ctx context.Context, id int64, reason string) (*domain.Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == domain.AppointmentCancelled || a.Status == domain.AppointmentCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.appointments.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}
	return s.GetAppointment(ctx, id)
}

func parseCategory(s string) (domain.ServiceCategory, bool) {
	switch domain.ServiceCategory(s) {
	case domain.CategoryBridal, domain.CategorySocial, domain.CategoryMatureSkin,
		domain.CategoryHairstyle, domain.CategoryOther:
		return domain.ServiceCategory(s), true
	}
	return "", false
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) CreateService(ctx context.Context, req ServiceRequest) (*domain.Service, error) {
	cat, ok := parseCategory(req.Category)
	if !ok || req.Price < 0 || req.Duration < 0 {
		return nil, ErrValidation
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    cat,
		IsActive:    active,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req ServiceRequest) (*domain.Service, error) {
	cat, ok := parseCategory(req.Category)
	if !ok || req.Price < 0 || req.Duration < 0 {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.Duration = req.Duration
	svc.Category = cat
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) SetServiceActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.services.SetActive(ctx, id, active)
}

func (s *Service) ListTransportCosts(ctx context.Context) ([]domain.TransportCost, error) {
	return s.transport.List(ctx)
}

func (s *Service) CreateTransportCost(ctx context.Context, req TransportCostRequest) (*domain.TransportCost, error) {
	if req.Cost < 0 {
		return nil, ErrValidation
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	t := &domain.TransportCost{
		District: req.District,
		Cost:     req.Cost,
		Notes:    req.Notes,
		IsActive: active,
	}
	if err := s.transport.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTransportCost(ctx context.Context, id int64, req TransportCostRequest) (*domain.TransportCost, error) {
	if req.Cost < 0 {
		return nil, ErrValidation
	}

	t, err := s.transport.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.District = req.District
	t.Cost = req.Cost
	t.Notes = req.Notes
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.transport.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTransportCost(ctx context.Context, id int64) error {
	if _, err := s.transport.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.transport.Delete(ctx, id)
}

func (s *Service) ListBlockedSlots(ctx context.Context, from string) ([]domain.BlockedSlot, error) {
	return s.blocked.List(ctx, from)
}

func (s *Service) CreateBlockedSlot(ctx context.Context, req BlockedSlotRequest) (*domain.BlockedSlot, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}

	b := &domain.BlockedSlot{Date: req.Date, Reason: req.Reason}
	if err := s.blocked.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBlockedSlot(ctx context.Context, id int64) error {
	return s.blocked.Delete(ctx, id)
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	pendingReviews, err := s.reviews.CountByStatus(ctx, string(domain.ReviewPending))
	if err != nil {
		return nil, err
	}
	openComplaints, err := s.complaints.CountByStatus(ctx, string(domain.ComplaintOpen))
	if err != nil {
		return nil, err
	}

	return &Stats{
		AppointmentsByStatus: byStatus,
		PendingReviews:       pendingReviews,
		OpenComplaints:       openComplaints,
	}, nil
}
