package service

import (
	"context"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/markup"
	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/CampusConnect/feed-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error)
}

type Reaction interface {
	React(ctx context.Context, postID int64, userID uuid.UUID, kind model.ReactionKind) (*dto.ReactionStateResponse, error)
	Get(ctx context.Context, postID int64, viewerID *uuid.UUID) (*dto.ReactionStateResponse, error)
}

type Trail interface {
	Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateTrailRequest) (*model.Trail, error)
	FindPostTrails(ctx context.Context, postID int64) ([]*model.FullTrail, error)
}

type Comment interface {
	Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type Service struct {
	Post
	Reaction
	Trail
	Comment
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	formatter := markup.New()

	return &Service{
		Post:      newPostService(logger, repo, formatter),
		Reaction:  newReactionService(logger, repo),
		Trail:     newTrailService(logger, repo, formatter),
		Comment:   newCommentService(logger, repo),
		UserCache: newUserCacheService(logger, repo),
	}
}
