package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

type LocationType string

const (
	LocationStudio LocationType = "studio"
	LocationHome   LocationType = "home"
)

type Appointment struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientPhone string `json:"client_phone" validate:"required"`
	ClientEmail string `json:"client_email,omitempty" validate:"omitempty,email"`

	Date         string       `json:"date" validate:"required"`        // YYYY-MM-DD
	TimeOfDay    string       `json:"time_of_day" validate:"required"` // HH:MM
	StartMinute  int          `json:"-"`
	EndMinute    int          `json:"-"`
	LocationType LocationType `json:"location_type"`
	District     string       `json:"district,omitempty"`
	Address      string       `json:"address,omitempty"`
	Notes        string       `json:"notes,omitempty" gorm:"type:text"`

	Subtotal       float64 `json:"subtotal"`
	TransportCost  float64 `json:"transport_cost"`
	NightShiftCost float64 `json:"night_shift_cost"`
	TotalPrice     float64 `json:"total_price"`
	TotalDuration  int     `json:"total_duration"` // minutes

	Status             AppointmentStatus `json:"status"`
	CancellationReason string            `json:"cancellation_reason,omitempty" gorm:"type:text"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Items []AppointmentItem `json:"items,omitempty" gorm:"foreignKey:AppointmentID"`
}

// AppointmentItem is a priced line frozen at booking time; later catalog edits
// must not change what the client was quoted.
type AppointmentItem struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointment_id"`
	ServiceID     int64   `json:"service_id"`
	ServiceName   string  `json:"service_name"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	LineTotal     float64 `json:"line_total"`
	LineDuration  int     `json:"line_duration"`
}

// BlockedSlot marks a whole date as unavailable for booking.
type BlockedSlot struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date" validate:"required"` // YYYY-MM-DD
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
