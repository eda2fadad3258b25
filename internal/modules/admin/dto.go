package admin

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

type TransportCostRequest struct {
	District string  `json:"district" binding:"required"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes"`
	IsActive *bool   `json:"is_active"`
}

type BlockedSlotRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type Stats struct {
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
	PendingReviews       int64            `json:"pending_reviews"`
	OpenComplaints       int64            `json:"open_complaints"`
}
