package dto

import "github.com/CampusConnect/feed-service/internal/model"

type GetPost struct {
	Post         model.FullPost      `json:"post"`
	UserReaction *model.ReactionKind `json:"userReaction"`
}
