package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/modules/pricing"
)

type Service struct {
	appointments AppointmentRepository
	catalog      CatalogProvider
	transport    TransportProvider
	blocked      BlockedDateChecker
	pricingCfg   pricing.Config

	now func() time.Time
}

func NewService(
	appointments AppointmentRepository,
	catalog CatalogProvider,
	transport TransportProvider,
	blocked BlockedDateChecker,
	pricingCfg pricing.Config,
) *Service {
	return &Service{
		appointments: appointments,
		catalog:      catalog,
		transport:    transport,
		blocked:      blocked,
		pricingCfg:   pricingCfg,
		now:          time.Now,
	}
}

func selectionMap(picks []ServicePick) map[int64]int {
	sel := make(map[int64]int, len(picks))
	for _, p := range picks {
		if p.Quantity > 0 {
			sel[p.ServiceID] += p.Quantity
		}
	}
	return sel
}

func parseLocationType(s string) (domain.LocationType, bool) {
	switch domain.LocationType(strings.ToLower(s)) {
	case domain.LocationStudio:
		return domain.LocationStudio, true
	case domain.LocationHome:
		return domain.LocationHome, true
	}
	return "", false
}

// Quote validates the selection and prices it against fresh catalog and
// transport snapshots. A rule rejection is a normal outcome carried in the
// response, not an error.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	loc, ok := parseLocationType(req.LocationType)
	if !ok {
		return nil, ErrValidation
	}

	catalog, err := s.catalog.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}

	sel := selectionMap(req.Services)

	if rej := pricing.ValidateSelection(sel, catalog); rej != nil {
		return &QuoteResponse{Rejection: rej}, nil
	}

	lookup, err := s.transportLookup(ctx, loc)
	if err != nil {
		return nil, err
	}

	b := pricing.ComputeBreakdown(s.pricingCfg, sel, catalog, lookup, loc, req.District, req.TimeOfDay)
	return &QuoteResponse{Breakdown: &b}, nil
}

func (s *Service) transportLookup(ctx context.Context, loc domain.LocationType) (*pricing.TransportLookup, error) {
	if loc != domain.LocationHome {
		return pricing.NewTransportLookup(nil), nil
	}
	entries, err := s.transport.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.NewTransportLookup(entries), nil
}

// CreateAppointment re-runs validation and pricing server-side, checks the
// slot and persists the result. Returning ErrSelectionRejected wraps the
// rejection reason obtained from a second Quote-equivalent pass.
func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, *pricing.Rejection, error) {
	loc, ok := parseLocationType(req.LocationType)
	if !ok {
		return nil, nil, ErrValidation
	}
	if loc == domain.LocationHome && req.District == "" {
		return nil, nil, ErrValidation
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, nil, ErrValidation
	}

	startMinute, ok := pricing.StartMinuteOfDay(req.TimeOfDay)
	if !ok {
		return nil, nil, ErrValidation
	}

	sel := selectionMap(req.Services)
	if len(sel) == 0 {
		return nil, nil, ErrValidation
	}

	catalog, err := s.catalog.ListActive(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	// the public quote is lenient about unknown ids; a booking is not
	known := make(map[int64]bool, len(catalog))
	for _, svc := range catalog {
		known[svc.ID] = true
	}
	for id := range sel {
		if !known[id] {
			return nil, nil, ErrUnknownService
		}
	}

	if rej := pricing.ValidateSelection(sel, catalog); rej != nil {
		return nil, rej, ErrSelectionRejected
	}

	lookup, err := s.transportLookup(ctx, loc)
	if err != nil {
		return nil, nil, err
	}
	b := pricing.ComputeBreakdown(s.pricingCfg, sel, catalog, lookup, loc, req.District, req.TimeOfDay)

	start := time.Date(day.Year(), day.Month(), day.Day(), startMinute/60, startMinute%60, 0, 0, time.Local)
	if start.Before(s.now()) {
		return nil, nil, ErrValidation
	}

	blocked, err := s.blocked.IsBlocked(ctx, req.Date)
	if err != nil {
		return nil, nil, err
	}
	if blocked {
		return nil, nil, ErrNotAvailable
	}

	endMinute := startMinute + b.TotalDuration
	overlap, err := s.appointments.HasOverlap(ctx, req.Date, startMinute, endMinute)
	if err != nil {
		return nil, nil, err
	}
	if overlap {
		return nil, nil, ErrNotAvailable
	}

	a := &domain.Appointment{
		Code:           uuid.NewString(),
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		Date:           req.Date,
		TimeOfDay:      req.TimeOfDay,
		StartMinute:    startMinute,
		EndMinute:      endMinute,
		LocationType:   loc,
		District:       req.District,
		Address:        req.Address,
		Notes:          req.Notes,
		Subtotal:       b.Subtotal,
		TransportCost:  b.TransportCost,
		NightShiftCost: b.NightShiftCost,
		TotalPrice:     b.Total,
		TotalDuration:  b.TotalDuration,
		Status:         domain.AppointmentPending,
	}
	for _, line := range b.Lines {
		a.Items = append(a.Items, domain.AppointmentItem{
			ServiceID:    line.ServiceID,
			ServiceName:  line.ServiceName,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			LineTotal:    line.LineTotal,
			LineDuration: line.LineDuration,
		})
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, nil, ErrOverbooking
		}
		return nil, nil, err
	}

	return a, nil, nil
}

// GetAvailability returns the occupied windows and blocked flag for a date.
func (s *Service) GetAvailability(ctx context.Context, dateStr string) (*AvailabilityResponse, error) {
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return nil, ErrValidation
	}

	blocked, err := s.blocked.IsBlocked(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	busy, err := s.appointments.GetBusySlots(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	out := &AvailabilityResponse{
		Date:      dateStr,
		Blocked:   blocked,
		BusySlots: make([]BusySlotDTO, 0, len(busy)),
	}
	for _, b := range busy {
		out.BusySlots = append(out.BusySlots, BusySlotDTO{
			Start: minuteToClock(b.StartMinute),
			End:   minuteToClock(b.EndMinute),
		})
	}
	return out, nil
}

func minuteToClock(m int) string {
	if m < 0 {
		m = 0
	}
	if m > 24*60 {
		m = 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	a, err := s.appointments.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
