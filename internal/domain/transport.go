package domain

import "time"

// TransportCost is an admin-curated flat surcharge for home visits to a district.
type TransportCost struct {
	ID        int64     `json:"id"`
	District  string    `json:"district" validate:"required" gorm:"uniqueIndex"`
	Cost      float64   `json:"cost" validate:"gte=0"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
