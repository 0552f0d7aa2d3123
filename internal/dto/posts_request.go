package dto

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}
