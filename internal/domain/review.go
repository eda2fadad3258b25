package domain

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewHidden   ReviewStatus = "hidden"
)

type Review struct {
	ID            int64        `json:"id"`
	AppointmentID int64        `json:"appointment_id" gorm:"uniqueIndex"`
	ClientName    string       `json:"client_name"`
	Rating        int          `json:"rating"`
	Comment       string       `json:"comment,omitempty" gorm:"type:text"`
	Status        ReviewStatus `json:"status"`
	AdminResponse *string      `json:"admin_response,omitempty"`
	RespondedAt   *time.Time   `json:"responded_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ReviewInvite is a one-shot token issued after a completed appointment.
type ReviewInvite struct {
	ID            int64      `json:"id"`
	AppointmentID int64      `json:"appointment_id"`
	Token         string     `json:"token" gorm:"uniqueIndex"`
	CreatedAt     time.Time  `json:"created_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
}
