package complaint

type FileComplaintRequest struct {
	Kind          string  `json:"kind" validate:"required,oneof=reclamo queja"`
	ConsumerName  string  `json:"consumer_name" validate:"required"`
	DocumentID    string  `json:"document_id" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Description   string  `json:"description" validate:"required"`
	ClaimedAmount float64 `json:"claimed_amount" validate:"gte=0"`
}

type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}
