package dto

import "github.com/CampusConnect/feed-service/internal/model"

type ReactRequest struct {
	ReactionType model.ReactionKind `json:"reactionType" binding:"required"`
}

// ReactionStateResponse is the enhanced reaction shape: the full aggregate
// plus the viewer's own reaction (null when none). Older clients that still
// expect the legacy {liked, likeCount} body are served by LegacyLikeResponse.
type ReactionStateResponse struct {
	ReactionCounts map[model.ReactionKind]int64 `json:"reactionCounts"`
	UserReaction   *model.ReactionKind          `json:"userReaction"`
}

type LegacyLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
