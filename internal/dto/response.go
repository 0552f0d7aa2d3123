package dto

import (
	"time"

	"github.com/CampusConnect/feed-service/internal/model"
)

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

type GetTrailsResponse struct {
	Trails []*model.FullTrail `json:"trails"`
}

type CreateTrailResponse struct {
	Trail model.Trail `json:"trail"`
}

type GetCommentsResponse struct {
	Comments []*model.FullComment `json:"comments"`
}

type CreateCommentResponse struct {
	Comment model.Comment `json:"comment"`
}
