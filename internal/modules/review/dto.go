package review

type CreateReviewRequest struct {
	Token      string `json:"token" binding:"required"`
	ClientName string `json:"client_name"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

type AdminResponseRequest struct {
	Response string `json:"response" binding:"required"`
}
