package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// BusySlot is an occupied window on a date, in minutes from midnight.
type BusySlot struct {
	StartMinute int `gorm:"column:start_minute"`
	EndMinute   int `gorm:"column:end_minute"`
}

type appointmentModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	Code               string     `gorm:"column:code;uniqueIndex"`
	ClientName         string     `gorm:"column:client_name"`
	ClientPhone        string     `gorm:"column:client_phone"`
	ClientEmail        *string    `gorm:"column:client_email"`
	Date               string     `gorm:"column:date;index"`
	TimeOfDay          string     `gorm:"column:time_of_day"`
	StartMinute        int        `gorm:"column:start_minute"`
	EndMinute          int        `gorm:"column:end_minute"`
	LocationType       string     `gorm:"column:location_type"`
	District           *string    `gorm:"column:district"`
	Address            *string    `gorm:"column:address"`
	Notes              *string    `gorm:"column:notes"`
	Subtotal           float64    `gorm:"column:subtotal"`
	TransportCost      float64    `gorm:"column:transport_cost"`
	NightShiftCost     float64    `gorm:"column:night_shift_cost"`
	TotalPrice         float64    `gorm:"column:total_price"`
	TotalDuration      int        `gorm:"column:total_duration"`
	Status             string     `gorm:"column:status"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

type appointmentItemModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	AppointmentID int64   `gorm:"column:appointment_id;index"`
	ServiceID     int64   `gorm:"column:service_id"`
	ServiceName   string  `gorm:"column:service_name"`
	UnitPrice     float64 `gorm:"column:unit_price"`
	Quantity      int     `gorm:"column:quantity"`
	LineTotal     float64 `gorm:"column:line_total"`
	LineDuration  int     `gorm:"column:line_duration"`
}

func (appointmentItemModel) TableName() string { return "appointment_items" }

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainAppointment(m appointmentModel, items []appointmentItemModel) *domain.Appointment {
	a := &domain.Appointment{
		ID:                 m.ID,
		Code:               m.Code,
		ClientName:         m.ClientName,
		ClientPhone:        m.ClientPhone,
		ClientEmail:        strOrEmpty(m.ClientEmail),
		Date:               m.Date,
		TimeOfDay:          m.TimeOfDay,
		StartMinute:        m.StartMinute,
		EndMinute:          m.EndMinute,
		LocationType:       domain.LocationType(m.LocationType),
		District:           strOrEmpty(m.District),
		Address:            strOrEmpty(m.Address),
		Notes:              strOrEmpty(m.Notes),
		Subtotal:           m.Subtotal,
		TransportCost:      m.TransportCost,
		NightShiftCost:     m.NightShiftCost,
		TotalPrice:         m.TotalPrice,
		TotalDuration:      m.TotalDuration,
		Status:             domain.AppointmentStatus(m.Status),
		CancellationReason: strOrEmpty(m.CancellationReason),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
	for _, it := range items {
		a.Items = append(a.Items, domain.AppointmentItem{
			ID:            it.ID,
			AppointmentID: it.AppointmentID,
			ServiceID:     it.ServiceID,
			ServiceName:   it.ServiceName,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			LineTotal:     it.LineTotal,
			LineDuration:  it.LineDuration,
		})
	}
	return a
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	return appointmentModel{
		ID:                 a.ID,
		Code:               a.Code,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		ClientEmail:        strOrNil(a.ClientEmail),
		Date:               a.Date,
		TimeOfDay:          a.TimeOfDay,
		StartMinute:        a.StartMinute,
		EndMinute:          a.EndMinute,
		LocationType:       string(a.LocationType),
		District:           strOrNil(a.District),
		Address:            strOrNil(a.Address),
		Notes:              strOrNil(a.Notes),
		Subtotal:           a.Subtotal,
		TransportCost:      a.TransportCost,
		NightShiftCost:     a.NightShiftCost,
		TotalPrice:         a.TotalPrice,
		TotalDuration:      a.TotalDuration,
		Status:             string(a.Status),
		CancellationReason: strOrNil(a.CancellationReason),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
		CancelledAt:        a.CancelledAt,
	}
}

// Create persists the appointment and its priced lines in one transaction.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range a.Items {
			item := appointmentItemModel{
				AppointmentID: m.ID,
				ServiceID:     a.Items[i].ServiceID,
				ServiceName:   a.Items[i].ServiceName,
				UnitPrice:     a.Items[i].UnitPrice,
				Quantity:      a.Items[i].Quantity,
				LineTotal:     a.Items[i].LineTotal,
				LineDuration:  a.Items[i].LineDuration,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			a.Items[i].ID = item.ID
			a.Items[i].AppointmentID = m.ID
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	var items []appointmentItemModel
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", id).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomainAppointment(m, items), nil
}

func (r *AppointmentRepository) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	var m appointmentModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	var items []appointmentItemModel
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", m.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomainAppointment(m, items), nil
}

func (r *AppointmentRepository) HasOverlap(ctx context.Context, date string, startMinute, endMinute int) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Table("appointments").
		Where("date = ?", date).
		Where("status NOT IN ?", []string{string(domain.AppointmentCancelled)}).
		Where("start_minute < ? AND end_minute > ?", endMinute, startMinute).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *AppointmentRepository) GetBusySlots(ctx context.Context, date string) ([]BusySlot, error) {
	var slots []BusySlot
	tx := r.db.WithContext(ctx).
		Table("appointments").
		Select("start_minute, end_minute").
		Where("date = ?", date).
		Where("status NOT IN ?", []string{string(domain.AppointmentCancelled)}).
		Order("start_minute").
		Scan(&slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

// ListFilter narrows the admin appointment listing.
type ListFilter struct {
	Status   string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (r *AppointmentRepository) List(ctx context.Context, f ListFilter) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&appointmentModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	q = q.Offset(f.Offset).Order("date DESC, start_minute DESC")

	var ms []appointmentModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainAppointment(m, nil))
	}
	return out, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Table("appointments").
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *AppointmentRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Table("appointments").
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              string(domain.AppointmentCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        now,
			"updated_at":          now,
		}).Error
}

// CompletePast flips confirmed appointments whose slot has fully passed to
// completed and returns how many rows changed.
func (r *AppointmentRepository) CompletePast(ctx context.Context, today string, nowMinute int) (int64, error) {
	tx := r.db.WithContext(ctx).
		Table("appointments").
		Where("status = ?", string(domain.AppointmentConfirmed)).
		Where("date < ? OR (date = ? AND end_minute <= ?)", today, today, nowMinute).
		Updates(map[string]any{"status": string(domain.AppointmentCompleted), "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

// ListCompletedWithoutInvite returns completed appointments that have no
// review invite yet.
func (r *AppointmentRepository) ListCompletedWithoutInvite(ctx context.Context, limit int) ([]domain.Appointment, error) {
	var ms []appointmentModel
	q := `
SELECT a.*
FROM appointments a
LEFT JOIN review_invites ri ON ri.appointment_id = a.id
WHERE a.status = ? AND ri.id IS NULL
ORDER BY a.id
LIMIT ?
`
	if err := r.db.WithContext(ctx).Raw(q, string(domain.AppointmentCompleted), limit).Scan(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainAppointment(m, nil))
	}
	return out, nil
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string `gorm:"column:status"`
		Cnt    int64  `gorm:"column:cnt"`
	}
	var rows []row
	tx := r.db.WithContext(ctx).
		Table("appointments").
		Select("status, COUNT(1) AS cnt").
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]int64, len(rows))
	for _, rr := range rows {
		out[rr.Status] = rr.Cnt
	}
	return out, nil
}
