package domain

import "time"

// Page holds admin-managed marketing content served by slug.
type Page struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug" validate:"required" gorm:"uniqueIndex"`
	Title     string    `json:"title" validate:"required"`
	Body      string    `json:"body" gorm:"type:text"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
