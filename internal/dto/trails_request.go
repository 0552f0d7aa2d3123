package dto

type CreateTrailRequest struct {
	Content  string  `json:"content" binding:"required,min=1,max=2000"`
	ImageURL *string `json:"imageUrl"`
}
