package domain

import "time"

type ComplaintKind string

const (
	ComplaintReclamo ComplaintKind = "reclamo" // dissatisfaction with the service itself
	ComplaintQueja   ComplaintKind = "queja"   // dissatisfaction with attention/process
)

type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "open"
	ComplaintAnswered ComplaintStatus = "answered"
)

// Complaint is an entry in the regulatory complaints register
// (Libro de Reclamaciones).
type Complaint struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code" gorm:"uniqueIndex"`
	Kind          ComplaintKind   `json:"kind"`
	ConsumerName  string          `json:"consumer_name"`
	DocumentID    string          `json:"document_id"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	Description   string          `json:"description" gorm:"type:text"`
	ClaimedAmount float64         `json:"claimed_amount,omitempty"`
	Status        ComplaintStatus `json:"status"`
	Response      *string         `json:"response,omitempty" gorm:"type:text"`
	RespondedAt   *time.Time      `json:"responded_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
