package content

type UpsertPageRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}
