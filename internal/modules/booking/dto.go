package booking

import "makeupstudio/internal/modules/pricing"

type ServicePick struct {
	ServiceID int64 `json:"service_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type QuoteRequest struct {
	Services     []ServicePick `json:"services" binding:"required"`
	LocationType string        `json:"location_type" binding:"required"`
	District     string        `json:"district"`
	TimeOfDay    string        `json:"time_of_day"`
}

type QuoteResponse struct {
	Breakdown *pricing.Breakdown `json:"breakdown,omitempty"`
	Rejection *pricing.Rejection `json:"rejection,omitempty"`
}

type CreateAppointmentRequest struct {
	ClientName   string        `json:"client_name" binding:"required"`
	ClientPhone  string        `json:"client_phone" binding:"required"`
	ClientEmail  string        `json:"client_email"`
	Date         string        `json:"date" binding:"required"`        // YYYY-MM-DD
	TimeOfDay    string        `json:"time_of_day" binding:"required"` // HH:MM
	LocationType string        `json:"location_type" binding:"required"`
	District     string        `json:"district"`
	Address      string        `json:"address"`
	Notes        string        `json:"notes"`
	Services     []ServicePick `json:"services" binding:"required"`
}

type BusySlotDTO struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	Date      string        `json:"date"`
	Blocked   bool          `json:"blocked"`
	BusySlots []BusySlotDTO `json:"busy_slots"`
}
